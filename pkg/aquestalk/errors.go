package aquestalk

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/aqkanji2koe-go/internal/bindings/aqtk"
)

// Native result classes. Synthesize wraps one of these in an *Error
// carrying the original code.
var (
	// ErrOther is code 100.
	ErrOther = errors.New("aquestalk: other error")
	// ErrOutOfMemory covers 101 (allocation) and 203 (heap exhausted).
	ErrOutOfMemory = errors.New("aquestalk: out of memory")
	// ErrUndefinedSymbol covers 102 and 105.
	ErrUndefinedSymbol = errors.New("aquestalk: undefined symbol in phonetic string")
	// ErrNegativeLength is code 103.
	ErrNegativeLength = errors.New("aquestalk: negative prosody length")
	// ErrInternal is code 104, an undefined delimiter inside the engine.
	ErrInternal = errors.New("aquestalk: internal error")
	// ErrInvalidTag covers tag syntax, length and value errors (106-108).
	ErrInvalidTag = errors.New("aquestalk: invalid tag")
	// ErrNoData is code 111: the string has nothing to voice.
	ErrNoData = errors.New("aquestalk: nothing to synthesize")
	// ErrTooLong covers 200, 201, 202 and 204.
	ErrTooLong = errors.New("aquestalk: phonetic string too long")
	// ErrUnknown is any code not listed above.
	ErrUnknown = errors.New("aquestalk: unknown error")
)

var (
	// ErrInvalidLicenseKey is returned by SetDevKey for every native failure.
	ErrInvalidLicenseKey = errors.New("aquestalk: invalid license key")
	// ErrInvalidString reports a NUL byte or invalid UTF-8 in an argument.
	ErrInvalidString = errors.New("aquestalk: string cannot be passed to native library")
	// ErrInvalidSpeed reports a speed outside [MinSpeed, MaxSpeed].
	ErrInvalidSpeed = errors.New("aquestalk: speed out of range")
	// ErrNotBuilt reports that libAquesTalk was not linked into the binary.
	ErrNotBuilt = aqtk.ErrNotBuilt
)

// Error is a native AquesTalk failure.
type Error struct {
	Code int
	Kind error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v (code %d)", e.Kind, e.Code)
}

func (e *Error) Unwrap() error { return e.Kind }

// FromCode maps an AquesTalk result code to an error. Zero maps to nil.
func FromCode(code int) error {
	if code == 0 {
		return nil
	}
	var kind error
	switch code {
	case 100:
		kind = ErrOther
	case 101, 203:
		kind = ErrOutOfMemory
	case 102, 105:
		kind = ErrUndefinedSymbol
	case 103:
		kind = ErrNegativeLength
	case 104:
		kind = ErrInternal
	case 106, 107, 108:
		kind = ErrInvalidTag
	case 111:
		kind = ErrNoData
	case 200, 201, 202, 204:
		kind = ErrTooLong
	default:
		kind = ErrUnknown
	}
	return &Error{Code: code, Kind: kind}
}
