package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhoneAM(t *testing.T) {
	valid := []string{
		"077123456",
		"099000000",
		"+37477123456",
		"077 12 34 56",
		"077-123-456",
	}
	for _, phone := range valid {
		assert.True(t, isValidPhoneAM(phone), "expected valid: %q", phone)
	}

	invalid := []string{
		"",
		"77123456",
		"0771234567",
		"+374771234",
		"abcdefghi",
	}
	for _, phone := range invalid {
		assert.False(t, isValidPhoneAM(phone), "expected invalid: %q", phone)
	}
}
