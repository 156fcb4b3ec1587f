//go:build !cgo || windows

package bindings

// Stub implementations for non-cgo builds or Windows.
// These allow the package to compile but return ErrNotBuilt when called.

func Create(string) (Handle, int, error) {
	return 0, 0, ErrNotBuilt
}

func Convert(Handle, string, []byte) (int, error) {
	return 0, ErrNotBuilt
}

func SetDevKey(string) (int, error) {
	return 0, ErrNotBuilt
}

func Release(Handle) {}

func Version() string { return "" }

func Linked() bool { return false }
