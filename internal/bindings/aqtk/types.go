package aqtk

import "errors"

// ErrNotBuilt reports that the AquesTalk bindings were not linked into the
// current binary.
var ErrNotBuilt = errors.New("aqkanji2koe/internal/bindings/aqtk: native bindings not built")
