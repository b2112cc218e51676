package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumericCodeLength(t *testing.T) {
	for _, n := range []int{OTPCodeLength, SessionTokenLength} {
		code, err := GenerateNumericCode(n)
		require.NoError(t, err)
		assert.Len(t, code, n)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code must be decimal digits, got %q", code)
		}
	}
}

func TestGenerateNumericCodeVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateNumericCode(OTPCodeLength)
		require.NoError(t, err)
		seen[code] = true
	}
	// 50 draws from a million-value space collapsing to a handful would
	// mean the generator is broken.
	assert.Greater(t, len(seen), 40)
}
