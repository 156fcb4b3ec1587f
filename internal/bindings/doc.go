// Package bindings contains all cgo declarations for the native AqKanji2Koe
// library.
//
// # Design Principles
//
//  1. Isolation: ALL cgo code lives under this directory. No other package
//     should import "C".
//
//  2. Minimal Surface: the four exported native entry points (create,
//     convert, set license key, release) and nothing else.
//
//  3. No Policy: result codes are returned as plain integers. Mapping them to
//     errors is the job of pkg/aqkanji2koe.
//
//  4. Caller Contracts: strings passed in must not contain NUL bytes and
//     output buffers must stay valid for the duration of the call. Nothing is
//     checked here beyond nil handles.
//
// # Memory Layout
//
// The native handle is stored as an opaque uintptr (Handle). The native
// pointer is never dereferenced on the Go side.
//
// # Threading
//
// The native library does not document its thread-safety. Callers must
// serialise access to a single handle.
package bindings
