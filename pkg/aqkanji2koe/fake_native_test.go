package aqkanji2koe

import (
	"sync"
	"testing"

	"github.com/hsiuhsiu/aqkanji2koe-go/internal/bindings"
)

// fakeNative is an in-memory stand-in for the native library.
type fakeNative struct {
	mu sync.Mutex

	createCode int
	createErr  error
	convert    func(kanji string, koe []byte) int
	devKeyCode int

	next     bindings.Handle
	live     map[bindings.Handle]bool
	released map[bindings.Handle]int
	bufSizes []int
	dics     []string
	keys     []string
}

func newFakeNative() *fakeNative {
	return &fakeNative{
		next:     1,
		live:     map[bindings.Handle]bool{},
		released: map[bindings.Handle]int{},
		convert: func(kanji string, koe []byte) int {
			copy(koe, "コンバンワ'")
			return 0
		},
	}
}

// install swaps f in as the native layer for the duration of the test.
func (f *fakeNative) install(t *testing.T) {
	t.Helper()
	prev := lib
	lib = f
	t.Cleanup(func() { lib = prev })
}

func (f *fakeNative) Create(dic string) (bindings.Handle, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dics = append(f.dics, dic)
	if f.createErr != nil {
		return 0, 0, f.createErr
	}
	if f.createCode != 0 {
		return 0, f.createCode, nil
	}
	h := f.next
	f.next++
	f.live[h] = true
	return h, 0, nil
}

func (f *fakeNative) Convert(h bindings.Handle, kanji string, koe []byte) (int, error) {
	f.mu.Lock()
	f.bufSizes = append(f.bufSizes, len(koe))
	alive := f.live[h]
	f.mu.Unlock()
	if !alive {
		return -1, nil
	}
	return f.convert(kanji, koe), nil
}

func (f *fakeNative) SetDevKey(key string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	return f.devKeyCode, nil
}

func (f *fakeNative) Release(h bindings.Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released[h]++
	delete(f.live, h)
}

func (f *fakeNative) releaseCount(h bindings.Handle) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.released[h]
}

func (f *fakeNative) totalReleases() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.released {
		n += c
	}
	return n
}
