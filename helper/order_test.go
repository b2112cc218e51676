package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cinema_booking/model"
)

func TestComputeOrderTotal(t *testing.T) {
	tickets := []model.Ticket{
		{Price: 2000, Status: model.TicketReserved},
		{Price: 3000, Status: model.TicketPaid},
		{Price: 2000, Status: model.TicketCancelled},
	}
	items := []model.OrderItem{
		{UnitPrice: 600, Quantity: 2},
		{UnitPrice: 1500, Quantity: 1},
	}

	assert.Equal(t, 2000.0+3000.0+1200.0+1500.0, ComputeOrderTotal(tickets, items))
}

func TestComputeOrderTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, ComputeOrderTotal(nil, nil))
}

func TestGenerateCodes(t *testing.T) {
	order := GenerateOrderCode()
	ticket := GenerateTicketCode()

	assert.True(t, strings.HasPrefix(order, "ORD-"))
	assert.Len(t, order, len("ORD-")+8)
	assert.True(t, strings.HasPrefix(ticket, "TKT-"))
	assert.Len(t, ticket, len("TKT-")+10)
	assert.NotEqual(t, GenerateOrderCode(), order)
}

func TestFormatSeatLabels(t *testing.T) {
	tickets := []model.Ticket{
		{Status: model.TicketPaid, Seat: model.Seat{Row: "A", Number: 5}},
		{Status: model.TicketCancelled, Seat: model.Seat{Row: "A", Number: 6}},
		{Status: model.TicketReserved, Seat: model.Seat{Row: "B", Number: 12}},
	}

	assert.Equal(t, "A5, B12", FormatSeatLabels(tickets))
}
