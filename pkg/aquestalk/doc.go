// Package aquestalk wraps the native AquesTalk synthesizer, which renders
// phonetic symbol strings (as produced by package aqkanji2koe) into WAV
// audio.
package aquestalk
