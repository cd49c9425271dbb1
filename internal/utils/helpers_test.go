package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMaxInt(t *testing.T) {
	assert.Equal(t, 2, MinInt(2, 5))
	assert.Equal(t, 5, MinInt(5, 2))
	assert.Equal(t, 5, MaxInt(2, 5))
	assert.Equal(t, 5, MaxInt(5, 2))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;", SanitizeString("  <script>  "))
}

func TestGenerateUUIDIsUnique(t *testing.T) {
	a := GenerateUUID()
	b := GenerateUUID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
