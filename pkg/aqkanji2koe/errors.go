package aqkanji2koe

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/aqkanji2koe-go/internal/bindings"
)

// Native result classes. Errors returned from Create and Convert wrap one of
// these in an *Error carrying the original code.
var (
	ErrOther                   = errors.New("aqkanji2koe: other error")
	ErrInputTooLong            = errors.New("aqkanji2koe: input text too long")
	ErrNoSystemDictionary      = errors.New("aqkanji2koe: no system dictionary specified")
	ErrInvalidCharCode         = errors.New("aqkanji2koe: invalid character code")
	ErrInvalidSystemDictionary = errors.New("aqkanji2koe: invalid system dictionary")
	ErrInvalidUserDictionary   = errors.New("aqkanji2koe: invalid user dictionary")
	ErrUnknown                 = errors.New("aqkanji2koe: unknown error")
)

// ErrInvalidLicenseKey is returned by SetDevKey for every native failure,
// regardless of the code reported.
var ErrInvalidLicenseKey = errors.New("aqkanji2koe: invalid license key")

// Wrapper-side failures. None of these come from the native library.
var (
	// ErrInvalidString reports a string that cannot be passed to the native
	// library: it contains a NUL byte or is not valid UTF-8.
	ErrInvalidString = errors.New("aqkanji2koe: string cannot be passed to native library")

	// ErrMalformedOutput reports a conversion result that is not a
	// NUL-terminated UTF-8 string within the output buffer.
	ErrMalformedOutput = errors.New("aqkanji2koe: malformed conversion output")

	// ErrClosed is returned by Convert after Close.
	ErrClosed = errors.New("aqkanji2koe: converter has been closed")

	// ErrNotBuilt reports that the native library was not linked into the
	// current binary.
	ErrNotBuilt = bindings.ErrNotBuilt
)

// Error is a native AqKanji2Koe failure. Kind is one of the native result
// sentinels above.
type Error struct {
	Code int
	Kind error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v (code %d)", e.Kind, e.Code)
}

func (e *Error) Unwrap() error { return e.Kind }

// FromCode maps a native result code to an error. Zero maps to nil.
func FromCode(code int) error {
	if code == 0 {
		return nil
	}
	return &Error{Code: code, Kind: kindOf(code)}
}

func kindOf(code int) error {
	switch {
	case code == 100:
		return ErrOther
	case code == 105:
		return ErrInputTooLong
	case code == 106:
		return ErrNoSystemDictionary
	case code == 107:
		return ErrInvalidCharCode
	case code >= 200 && code <= 299:
		return ErrInvalidSystemDictionary
	case code >= 300 && code <= 399:
		return ErrInvalidUserDictionary
	default:
		return ErrUnknown
	}
}

// Code extracts the native result code from err, if any.
func Code(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}
