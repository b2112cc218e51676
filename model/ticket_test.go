package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{TicketReserved, TicketPaid, true},
		{TicketReserved, TicketCancelled, true},
		{TicketReserved, TicketUsed, false},
		{TicketPaid, TicketUsed, true},
		{TicketPaid, TicketCancelled, true},
		{TicketPaid, TicketPaid, false},
		{TicketUsed, TicketCancelled, false},
		{TicketUsed, TicketPaid, false},
		{TicketCancelled, TicketPaid, false},
		{TicketCancelled, TicketCancelled, false},
		{TicketReserved, "garbage", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}
