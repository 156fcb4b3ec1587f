package aqkanji2koe

import (
	"sync"
)

// The license key lives in the native library's process-wide state. It
// should be set before Create, applies to every Converter created afterwards
// and cannot be unset.
var (
	licenseMu      sync.Mutex
	licenseApplied bool
)

// SetDevKey installs the AqKanji2Koe license key. Any native failure yields
// ErrInvalidLicenseKey; the native code is not exposed. Without a key the
// library runs in evaluation mode, where every ナ-row and マ-row sound is
// rendered as ヌ.
func SetDevKey(key string) error {
	if err := checkString("license key", key); err != nil {
		return err
	}

	licenseMu.Lock()
	defer licenseMu.Unlock()

	code, err := lib.SetDevKey(key)
	if err != nil {
		return err
	}
	if code != 0 {
		return ErrInvalidLicenseKey
	}
	licenseApplied = true
	return nil
}

// DevKeyApplied reports whether SetDevKey has succeeded in this process.
func DevKeyApplied() bool {
	licenseMu.Lock()
	defer licenseMu.Unlock()
	return licenseApplied
}
