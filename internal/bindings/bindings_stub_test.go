//go:build !cgo || windows

package bindings

import (
	"errors"
	"testing"
)

func TestStubsReportNotBuilt(t *testing.T) {
	if _, _, err := Create("dic"); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("Create: expected ErrNotBuilt, got %v", err)
	}
	if _, err := Convert(1, "text", make([]byte, 8)); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("Convert: expected ErrNotBuilt, got %v", err)
	}
	if _, err := SetDevKey("key"); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("SetDevKey: expected ErrNotBuilt, got %v", err)
	}
	Release(1)
	if Linked() {
		t.Fatal("stub build must not report a linked library")
	}
}
