// Package aqtk declares the AquesTalk speech synthesizer entry points used
// to turn phonetic symbol strings into WAV data. It lives beside the
// AqKanji2Koe bindings but links its own library, so binaries that only
// convert text do not need libAquesTalk.
package aqtk
