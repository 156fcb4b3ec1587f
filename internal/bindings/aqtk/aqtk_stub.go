//go:build !cgo || windows

package aqtk

func Synthe(string, int) ([]byte, int, error) {
	return nil, 0, ErrNotBuilt
}

func SetDevKey(string) (int, error) {
	return 0, ErrNotBuilt
}

func Linked() bool { return false }
