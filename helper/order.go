package helper

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"cinema_booking/model"
)

func GenerateOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

func GenerateTicketCode() string {
	return "TKT-" + strings.ToUpper(uuid.New().String()[:10])
}

// ComputeOrderTotal recomputes the order total from its children. Cancelled
// tickets do not count. This is the only source of truth for TotalAmount,
// the stored column is derived.
func ComputeOrderTotal(tickets []model.Ticket, items []model.OrderItem) float64 {
	var total float64
	for _, t := range tickets {
		if t.Status != model.TicketCancelled {
			total += t.Price
		}
	}
	for _, it := range items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}

// FormatSeatLabels renders "A5, A6, B2" for emails and the Telegram bot.
func FormatSeatLabels(tickets []model.Ticket) string {
	labels := make([]string, 0, len(tickets))
	for _, t := range tickets {
		if t.Status == model.TicketCancelled {
			continue
		}
		labels = append(labels, SeatLabel(t.Seat))
	}
	return strings.Join(labels, ", ")
}

func SeatLabel(seat model.Seat) string {
	return seat.Row + strconv.Itoa(seat.Number)
}
