package aqkanji2koe

import (
	"context"
	"runtime"
	"sync"

	"github.com/hsiuhsiu/aqkanji2koe-go/internal/bindings"
	"github.com/hsiuhsiu/aqkanji2koe-go/pkg/logging"
)

// Converter owns one native AqKanji2Koe instance. It is safe for concurrent
// use; calls on the same Converter are serialised because the native library
// does not document its thread-safety.
type Converter struct {
	mu     sync.Mutex
	handle bindings.Handle
	dic    string
	log    logging.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger routes lifecycle events (create, release) to l at debug level.
// Errors are returned, never logged.
func WithLogger(l logging.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.log = l
		}
	}
}

// Create opens the system dictionary directory dic and returns a Converter
// owning the resulting native handle. The handle is released by Close, or by
// a finalizer if the Converter becomes unreachable without being closed.
func Create(dic string, opts ...Option) (*Converter, error) {
	if err := checkString("dictionary path", dic); err != nil {
		return nil, err
	}

	c := &Converter{dic: dic, log: logging.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	h, code, err := lib.Create(dic)
	if err != nil {
		return nil, err
	}
	if h == 0 {
		if code == 0 {
			return nil, &Error{Code: 0, Kind: ErrUnknown}
		}
		return nil, FromCode(code)
	}

	c.handle = h
	c.log = c.log.With("dic", dic)
	c.log.Debug(context.Background(), "aqkanji2koe instance created")
	runtime.SetFinalizer(c, func(c *Converter) { _ = c.Close() })
	return c, nil
}

// Convert returns the phonetic symbol string for text. The output buffer is
// BufferSize(text) bytes.
func (c *Converter) Convert(text string) (string, error) {
	if err := checkString("text", text); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handle == 0 {
		return "", ErrClosed
	}

	size := BufferSize(text)
	if err := checkBufferSize(size); err != nil {
		return "", err
	}
	koe := make([]byte, size)
	code, err := lib.Convert(c.handle, text, koe)
	if err != nil {
		return "", err
	}
	if code != 0 {
		return "", FromCode(code)
	}
	return decodeOutput(koe)
}

// Close releases the native handle. It is idempotent; only the first call
// reaches the native library.
func (c *Converter) Close() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handle == 0 {
		return nil
	}

	runtime.SetFinalizer(c, nil)
	lib.Release(c.handle)
	c.handle = 0
	c.log.Debug(context.Background(), "aqkanji2koe instance released")
	return nil
}

// Closed reports whether the native handle has been released.
func (c *Converter) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handle == 0
}

// Dictionary returns the dictionary path the Converter was created with.
func (c *Converter) Dictionary() string { return c.dic }

// ConvertOnce creates a Converter for dic, converts text and releases the
// handle before returning, whether or not the conversion succeeded.
func ConvertOnce(dic, text string, opts ...Option) (string, error) {
	c, err := Create(dic, opts...)
	if err != nil {
		return "", err
	}
	defer c.Close()
	return c.Convert(text)
}
