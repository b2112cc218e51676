package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"077123456", "077123456"},
		{"+37477123456", "077123456"},
		{"37477123456", "077123456"},
		{"+374 77 123456", "077123456"},
		{"077-12-34-56", "077123456"},
		{"(077) 123456", "077123456"},
		{"099000000", "099000000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.in), "input %q", tt.in)
	}
}
