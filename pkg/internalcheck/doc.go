// Package internalcheck holds static policy tests over the module's own
// source.
//
// It is part of the internal tooling and should not be imported by
// applications. Use pkg/aqkanji2koe and pkg/aquestalk instead.
package internalcheck
