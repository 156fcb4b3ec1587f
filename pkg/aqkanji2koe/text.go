package aqkanji2koe

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/hsiuhsiu/aqkanji2koe-go/internal/bindings"
)

// BufferSize returns the capacity of the output buffer used to convert text:
// twice its length in bytes plus a fixed slack.
func BufferSize(text string) int {
	return 2*len(text) + bindings.DefaultBufferSlack
}

// checkBufferSize rejects capacities the native int parameter cannot hold.
func checkBufferSize(n int) error {
	if n > math.MaxInt32 {
		return fmt.Errorf("%w: output buffer of %d bytes exceeds native capacity", ErrInputTooLong, n)
	}
	return nil
}

// checkString verifies that s can be handed to the native library as a
// NUL-terminated UTF-8 string.
func checkString(what, s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return fmt.Errorf("%w: %s contains NUL at byte %d", ErrInvalidString, what, i)
	}
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidString, what)
	}
	return nil
}

// decodeOutput returns the NUL-terminated prefix of buf. It never reads past
// the end of buf.
func decodeOutput(buf []byte) (string, error) {
	n := bytes.IndexByte(buf, 0)
	if n < 0 {
		return "", fmt.Errorf("%w: no terminator within %d bytes", ErrMalformedOutput, len(buf))
	}
	if !utf8.Valid(buf[:n]) {
		return "", fmt.Errorf("%w: result is not valid UTF-8", ErrMalformedOutput)
	}
	return string(buf[:n]), nil
}
