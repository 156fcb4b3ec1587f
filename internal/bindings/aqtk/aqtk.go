//go:build cgo && !windows

package aqtk

/*
#cgo LDFLAGS: -L${SRCDIR}/../../../lib -Wl,-rpath,${SRCDIR}/../../../lib -lAquesTalk
#include <stdlib.h>
#include <string.h>

unsigned char *AquesTalk_Synthe_Utf8(const char *koe, int iSpeed, int *size);
void           AquesTalk_FreeWave(unsigned char *wav);
int            AquesTalk_SetDevKey(const char *key);
*/
import "C"

import "unsafe"

// Synthe renders koe at the given speed. On success it returns a Go copy of
// the WAV data and the native buffer is freed before returning. On failure
// wav is nil and code holds the native error code.
func Synthe(koe string, speed int) (wav []byte, code int, err error) {
	cKoe := C.CString(koe)
	defer C.free(unsafe.Pointer(cKoe))

	var size C.int
	p := C.AquesTalk_Synthe_Utf8(cKoe, C.int(speed), &size)
	if p == nil {
		return nil, int(size), nil
	}
	defer C.AquesTalk_FreeWave(p)

	if size <= 0 {
		return []byte{}, 0, nil
	}
	return C.GoBytes(unsafe.Pointer(p), size), 0, nil
}

// SetDevKey installs the AquesTalk license key. The C copy of the key is
// zeroed before it is freed.
func SetDevKey(key string) (int, error) {
	cKey := C.CString(key)
	defer func() {
		C.memset(unsafe.Pointer(cKey), 0, C.size_t(len(key)))
		C.free(unsafe.Pointer(cKey))
	}()
	return int(C.AquesTalk_SetDevKey(cKey)), nil
}

// Linked reports whether this binary was built against libAquesTalk.
func Linked() bool { return true }
