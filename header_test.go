package nitrohuff

import (
	"errors"
	"testing"
)

func TestBitWidthFlag(t *testing.T) {
	tests := []struct {
		width BitWidth
		flag  Flag
		valid bool
	}{
		{Width4, 0x24, true},
		{Width8, 0x28, true},
		{0, 0, false},
		{6, 0, false},
	}

	for _, tt := range tests {
		if got := tt.width.Valid(); got != tt.valid {
			t.Errorf("BitWidth(%d).Valid() = %v, want %v", tt.width, got, tt.valid)
		}
		if got := tt.width.Flag(); got != tt.flag {
			t.Errorf("BitWidth(%d).Flag() = 0x%02x, want 0x%02x", tt.width, got, tt.flag)
		}
		if tt.valid && tt.flag.Width() != tt.width {
			t.Errorf("Flag(0x%02x).Width() = %d, want %d", tt.flag, tt.flag.Width(), tt.width)
		}
	}

	if Flag(0x10).Width() != 0 {
		t.Error("LZ flag should not map to a Huffman width")
	}
}

func TestHeaderAppendTo(t *testing.T) {
	h := Header{Flag: Flag8Bit, Size: 0x123456}
	got := h.AppendTo([]byte{0xEE})
	want := []byte{0xEE, 0x28, 0x56, 0x34, 0x12}
	if string(got) != string(want) {
		t.Errorf("AppendTo = % x, want % x", got, want)
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    Header
		wantErr error
	}{
		{"4-bit", []byte{0x24, 0x10, 0x00, 0x00}, Header{Flag4Bit, 16}, nil},
		{"8-bit max size", []byte{0x28, 0xFF, 0xFF, 0xFF, 0x99}, Header{Flag8Bit, MaxDecompressedSize}, nil},
		{"rle flag", []byte{0x30, 0x10, 0x00, 0x00}, Header{}, ErrInvalidFlag},
		{"short", []byte{0x28, 0x10, 0x00}, Header{}, ErrTruncatedHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHeader(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseHeader error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHeader = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseHeader_RoundTrip(t *testing.T) {
	for _, h := range []Header{{Flag4Bit, 0}, {Flag8Bit, 1}, {Flag4Bit, MaxDecompressedSize}} {
		got, err := ParseHeader(h.AppendTo(nil))
		if err != nil {
			t.Fatalf("ParseHeader(%+v): %v", h, err)
		}
		if got != h {
			t.Errorf("ParseHeader(AppendTo(%+v)) = %+v", h, got)
		}
	}
}
