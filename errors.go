package nitrohuff

import "errors"

// Error represents a codec error code.
type Error int

// Error codes.
const (
	ErrNone               Error = 0
	ErrInvalidBitWidth    Error = 1
	ErrInputTooLarge      Error = 2
	ErrNegativeSize       Error = 3
	ErrInvalidFlag        Error = 4
	ErrTruncatedHeader    Error = 5
	ErrEmptyNodeArray     Error = 6
	ErrTruncatedNodeArray Error = 7
	ErrNodeOutOfRange     Error = 8
	ErrNodeOffsetOverflow Error = 9
	ErrSymbolOutOfRange   Error = 10
	ErrSharedNode         Error = 11
	ErrTruncatedBitstream Error = 12
)

var errMessages = [13]string{
	"No error",
	"Symbol width must be 4 or 8 bits",
	"Input exceeds the 24-bit size field",
	"Negative decompressed size",
	"Invalid compression flag",
	"Header shorter than 4 bytes",
	"Missing node array",
	"Node array shorter than its size byte",
	"Node link points outside the node array",
	"Node offset exceeds 6 bits",
	"Leaf symbol wider than the symbol width",
	"Node record linked from more than one parent",
	"Bitstream ended before the decompressed size was reached",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}

// GetErrorMessage returns the message for an error code.
func GetErrorMessage(code Error) string {
	return code.Error()
}

// ErrorKind classifies error codes.
type ErrorKind uint8

// Error kinds.
const (
	KindNone            ErrorKind = 0
	KindInvalidArgument ErrorKind = 1 // The call itself was invalid
	KindFormat          ErrorKind = 2 // The compressed data is malformed
)

// Kind returns the class of e.
func (e Error) Kind() ErrorKind {
	switch e {
	case ErrNone:
		return KindNone
	case ErrInvalidBitWidth, ErrInputTooLarge, ErrNegativeSize:
		return KindInvalidArgument
	default:
		return KindFormat
	}
}

// IsFormatError reports whether err carries an error code of KindFormat.
func IsFormatError(err error) bool {
	return errorKind(err) == KindFormat
}

// IsInvalidArgument reports whether err carries an error code of
// KindInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errorKind(err) == KindInvalidArgument
}

func errorKind(err error) ErrorKind {
	var code Error
	if errors.As(err, &code) {
		return code.Kind()
	}
	return KindNone
}
