// Package aqkanji2koe is a safe Go wrapper around the native AqKanji2Koe
// library, which converts Japanese text (kanji and kana) into the phonetic
// symbol strings consumed by the AquesTalk speech synthesizer.
//
// A Converter owns exactly one native handle. Create opens a system
// dictionary, Convert may be called any number of times, and Close releases
// the handle exactly once:
//
//	conv, err := aqkanji2koe.Create("./aq_dic")
//	if err != nil {
//		return err
//	}
//	defer conv.Close()
//
//	koe, err := conv.Convert("こんばんは") // "コンバンワ'"
//
// ConvertOnce performs create, convert and release in a single call.
//
// Native result codes are mapped to the sentinel errors in this package; use
// errors.Is to classify them and errors.As with *Error to recover the code.
//
// Input and output strings are UTF-8. Strings that cannot cross the native
// boundary (embedded NUL bytes or invalid UTF-8) are rejected with
// ErrInvalidString before any native call.
//
// When the module is built without cgo, or on Windows, every native
// operation fails with ErrNotBuilt.
package aqkanji2koe
