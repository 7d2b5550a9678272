package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGUID(t *testing.T) {
	assert.Equal(t, "A1B2C3D4E5F6", NormalizeGUID("a1:b2:c3:d4:e5:f6"))
	assert.Equal(t, "A1B2C3D4E5F6", NormalizeGUID("A1-B2-C3-D4-E5-F6"))
	assert.Equal(t, "A1B2C3D4E5F6", NormalizeGUID("a1b2.c3d4.e5f6"))
	assert.Equal(t, "", NormalizeGUID(""))
	assert.Equal(t, "", NormalizeGUID("a1:b2:c3"), "too short after stripping")
	assert.Equal(t, "", NormalizeGUID("g1:b2:c3:d4:e5:f6"), "non hex digit")
}

func TestDeviceGUIDShape(t *testing.T) {
	// whether it came from the mac address or the random fallback, the
	// shape is always 12 upper case hex digits
	guid := DeviceGUID()
	assert.True(t, IsValidGUID(guid), "got %q", guid)
}

func TestIsValidGUID(t *testing.T) {
	assert.True(t, IsValidGUID("0123456789AB"))
	assert.False(t, IsValidGUID("0123456789ab"), "lower case is not normalized form")
	assert.False(t, IsValidGUID("0123456789ABCD"))
	assert.False(t, IsValidGUID(""))
}
