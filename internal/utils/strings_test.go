package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "long st...", Truncate("long string here", 10))
	assert.Equal(t, "...", Truncate("anything", 3))
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "********5678", MaskPhoneNumber("254712345678"))
	assert.Equal(t, "******5678", MaskPhoneNumber("0712345678"))
	assert.Equal(t, "********5678", MaskPhoneNumber("+254 712 345 678"))
	assert.Equal(t, "1234", MaskPhoneNumber("1234"))
	assert.Equal(t, "", MaskPhoneNumber(""))
}
