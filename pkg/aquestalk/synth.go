package aquestalk

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/hsiuhsiu/aqkanji2koe-go/internal/bindings/aqtk"
)

// Speed bounds accepted by AquesTalk, in percent of normal speed.
const (
	MinSpeed     = 50
	MaxSpeed     = 300
	DefaultSpeed = 100
)

type native interface {
	Synthe(koe string, speed int) ([]byte, int, error)
	SetDevKey(key string) (int, error)
}

type cgoNative struct{}

func (cgoNative) Synthe(koe string, speed int) ([]byte, int, error) { return aqtk.Synthe(koe, speed) }
func (cgoNative) SetDevKey(key string) (int, error)                 { return aqtk.SetDevKey(key) }

var lib native = cgoNative{}

// synthMu serialises calls into the synthesizer; AquesTalk keeps global
// state and is not documented as reentrant.
var synthMu sync.Mutex

// Synthesize renders the phonetic symbol string koe as a WAV file at the
// given speed.
func Synthesize(koe string, speed int) ([]byte, error) {
	if err := checkString("phonetic string", koe); err != nil {
		return nil, err
	}
	if speed < MinSpeed || speed > MaxSpeed {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrInvalidSpeed, speed, MinSpeed, MaxSpeed)
	}

	synthMu.Lock()
	defer synthMu.Unlock()

	wav, code, err := lib.Synthe(koe, speed)
	if err != nil {
		return nil, err
	}
	if wav == nil {
		if code == 0 {
			return nil, &Error{Code: 0, Kind: ErrUnknown}
		}
		return nil, FromCode(code)
	}
	return wav, nil
}

// SetDevKey installs the AquesTalk license key for the process.
func SetDevKey(key string) error {
	if err := checkString("license key", key); err != nil {
		return err
	}

	synthMu.Lock()
	defer synthMu.Unlock()

	code, err := lib.SetDevKey(key)
	if err != nil {
		return err
	}
	if code != 0 {
		return ErrInvalidLicenseKey
	}
	return nil
}

// Linked reports whether libAquesTalk is linked into this binary.
func Linked() bool { return aqtk.Linked() }

func checkString(what, s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return fmt.Errorf("%w: %s contains NUL at byte %d", ErrInvalidString, what, i)
	}
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidString, what)
	}
	return nil
}
