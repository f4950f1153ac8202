package nitrohuff

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	for i := range errMessages {
		err := Error(i)
		if err.Error() == "" {
			t.Errorf("Error(%d) has empty message", i)
		}
	}
	if ErrNone.Error() != "No error" {
		t.Error("ErrNone.Error() should be 'No error'")
	}
}

func TestGetErrorMessage(t *testing.T) {
	tests := []struct {
		code Error
		want string
	}{
		{ErrNone, "No error"},
		{ErrInvalidBitWidth, "Symbol width must be 4 or 8 bits"},
		{ErrInvalidFlag, "Invalid compression flag"},
		{Error(255), "unknown error"},
		{Error(-1), "unknown error"},
	}

	for _, tt := range tests {
		got := GetErrorMessage(tt.code)
		if got != tt.want {
			t.Errorf("GetErrorMessage(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		code Error
		want ErrorKind
	}{
		{ErrNone, KindNone},
		{ErrInvalidBitWidth, KindInvalidArgument},
		{ErrInputTooLarge, KindInvalidArgument},
		{ErrNegativeSize, KindInvalidArgument},
		{ErrInvalidFlag, KindFormat},
		{ErrTruncatedHeader, KindFormat},
		{ErrEmptyNodeArray, KindFormat},
		{ErrTruncatedNodeArray, KindFormat},
		{ErrNodeOutOfRange, KindFormat},
		{ErrNodeOffsetOverflow, KindFormat},
		{ErrSymbolOutOfRange, KindFormat},
		{ErrSharedNode, KindFormat},
		{ErrTruncatedBitstream, KindFormat},
	}

	for _, tt := range tests {
		if got := tt.code.Kind(); got != tt.want {
			t.Errorf("Error(%d).Kind() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestErrorClassificationThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: got 0x10", ErrInvalidFlag)

	if !errors.Is(wrapped, ErrInvalidFlag) {
		t.Error("wrapped error should match ErrInvalidFlag")
	}
	if !IsFormatError(wrapped) {
		t.Error("wrapped ErrInvalidFlag should be a format error")
	}
	if IsInvalidArgument(wrapped) {
		t.Error("wrapped ErrInvalidFlag should not be an invalid argument")
	}
	if !IsInvalidArgument(ErrInvalidBitWidth) {
		t.Error("ErrInvalidBitWidth should be an invalid argument")
	}
	if IsFormatError(errors.New("other")) || IsInvalidArgument(nil) {
		t.Error("foreign errors should not be classified")
	}
}
