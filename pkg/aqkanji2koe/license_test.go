package aqkanji2koe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLicense(t *testing.T) {
	t.Helper()
	licenseMu.Lock()
	licenseApplied = false
	licenseMu.Unlock()
	t.Cleanup(func() {
		licenseMu.Lock()
		licenseApplied = false
		licenseMu.Unlock()
	})
}

func TestSetDevKeyInvalidAlwaysSingleError(t *testing.T) {
	for _, code := range []int{1, 100, 201, 305, -7} {
		f := newFakeNative()
		f.devKeyCode = code
		f.install(t)
		resetLicense(t)

		err := SetDevKey("XXXX-XXXX")
		assert.Same(t, ErrInvalidLicenseKey, err, "code %d", code)

		var e *Error
		assert.False(t, errors.As(err, &e), "code %d must not leak", code)
		assert.False(t, DevKeyApplied())
	}
}

func TestSetDevKeySuccess(t *testing.T) {
	f := newFakeNative()
	f.install(t)
	resetLicense(t)

	require.NoError(t, SetDevKey("VALID-KEY"))
	assert.True(t, DevKeyApplied())
	assert.Equal(t, []string{"VALID-KEY"}, f.keys)
}

func TestSetDevKeyDoesNotNeedAConverter(t *testing.T) {
	f := newFakeNative()
	f.install(t)
	resetLicense(t)

	require.NoError(t, SetDevKey("KEY"))
	assert.Empty(t, f.dics)
}

func TestSetDevKeyRejectsNUL(t *testing.T) {
	f := newFakeNative()
	f.install(t)
	resetLicense(t)

	assert.ErrorIs(t, SetDevKey("a\x00b"), ErrInvalidString)
	assert.Empty(t, f.keys)
}
