package aqkanji2koe

import "github.com/hsiuhsiu/aqkanji2koe-go/internal/bindings"

// Version is the wrapper version, overridden at build time via ldflags.
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// NativeVersion returns the version string reported by the native bindings if
// available; otherwise "unknown".
func NativeVersion() string {
	if v := bindings.Version(); v != "" {
		return v
	}
	return "unknown"
}
