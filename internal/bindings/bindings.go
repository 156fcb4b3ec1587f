//go:build cgo && !windows

package bindings

/*
#cgo LDFLAGS: -L${SRCDIR}/../../lib -Wl,-rpath,${SRCDIR}/../../lib -lAqKanji2Koe
#include <stdlib.h>
#include <string.h>

void *AqKanji2Koe_Create(const char *pathDic, int *pErr);
int   AqKanji2Koe_Convert(void *hAqKanji2Koe, const char *kanji, char *koe, int nBufKoe);
int   AqKanji2Koe_SetDevKey(const char *devKey);
void  AqKanji2Koe_Release(void *hAqKanji2Koe);
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// Create opens the system dictionary at dic. On failure the returned handle
// is zero and code holds the native error code.
func Create(dic string) (Handle, int, error) {
	cDic := C.CString(dic)
	defer C.free(unsafe.Pointer(cDic))

	var cErr C.int
	h := C.AqKanji2Koe_Create(cDic, &cErr)
	if h == nil {
		return 0, int(cErr), nil
	}
	return Handle(uintptr(h)), 0, nil
}

// Convert writes the NUL-terminated phonetic string for kanji into koe and
// returns the native result code. koe must be non-empty; its length is
// passed as the buffer capacity.
func Convert(h Handle, kanji string, koe []byte) (int, error) {
	if h == 0 || len(koe) == 0 {
		return -1, nil
	}
	cKanji := C.CString(kanji)
	defer C.free(unsafe.Pointer(cKanji))

	rc := C.AqKanji2Koe_Convert(
		handlePtr(h),
		cKanji,
		(*C.char)(unsafe.Pointer(&koe[0])),
		C.int(len(koe)),
	)
	runtime.KeepAlive(koe)
	return int(rc), nil
}

// SetDevKey installs the license key in the native library's global state.
// The C copy of the key is zeroed before it is freed.
func SetDevKey(key string) (int, error) {
	cKey := C.CString(key)
	defer func() {
		C.memset(unsafe.Pointer(cKey), 0, C.size_t(len(key)))
		C.free(unsafe.Pointer(cKey))
	}()
	return int(C.AqKanji2Koe_SetDevKey(cKey)), nil
}

// Release frees the native instance. Releasing the zero handle is a no-op.
func Release(h Handle) {
	if h == 0 {
		return
	}
	C.AqKanji2Koe_Release(handlePtr(h))
}

// Version returns an empty string; the native library does not export one.
func Version() string { return "" }

// Linked reports whether this binary was built against the native library.
func Linked() bool { return true }

func handlePtr(h Handle) unsafe.Pointer {
	return unsafe.Pointer(uintptr(h))
}
