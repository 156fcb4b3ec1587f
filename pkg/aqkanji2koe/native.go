package aqkanji2koe

import "github.com/hsiuhsiu/aqkanji2koe-go/internal/bindings"

// native is the set of entry points the wrapper drives. The default routes
// to internal/bindings; tests substitute a fake.
type native interface {
	Create(dic string) (bindings.Handle, int, error)
	Convert(h bindings.Handle, kanji string, koe []byte) (int, error)
	SetDevKey(key string) (int, error)
	Release(h bindings.Handle)
}

type cgoNative struct{}

func (cgoNative) Create(dic string) (bindings.Handle, int, error) { return bindings.Create(dic) }

func (cgoNative) Convert(h bindings.Handle, kanji string, koe []byte) (int, error) {
	return bindings.Convert(h, kanji, koe)
}

func (cgoNative) SetDevKey(key string) (int, error) { return bindings.SetDevKey(key) }

func (cgoNative) Release(h bindings.Handle) { bindings.Release(h) }

var lib native = cgoNative{}

// Linked reports whether the native library is linked into this binary.
func Linked() bool { return bindings.Linked() }
