package model

const (
	TicketReserved  = "reserved"
	TicketPaid      = "paid"
	TicketUsed      = "used"
	TicketCancelled = "cancelled"
)

// ActiveTicketStatuses are the statuses that keep a seat occupied.
var ActiveTicketStatuses = []string{TicketReserved, TicketPaid, TicketUsed}

type Ticket struct {
	DTO
	Code        string    `gorm:"uniqueIndex;size:20;not null" json:"code"`
	ScreeningId uint      `gorm:"not null;index:idx_screening_seat" json:"screeningId"`
	SeatId      uint      `gorm:"not null;index:idx_screening_seat" json:"seatId"`
	UserId      *uint     `gorm:"index" json:"userId"`
	OrderId     uint      `gorm:"not null;index" json:"orderId"`
	Price       float64   `gorm:"not null" json:"price"`
	Status      string    `gorm:"size:12;not null;default:'reserved'" json:"status"`
	Screening   Screening `gorm:"foreignKey:ScreeningId" json:"screening,omitempty"`
	Seat        Seat      `gorm:"foreignKey:SeatId" json:"seat,omitempty"`
}

type Tickets []Ticket

// CanTransition reports whether a ticket may move from one status to another.
// Paid follows reserved, used follows paid, and cancellation is allowed only
// while the ticket is reserved or paid.
func CanTransition(from, to string) bool {
	switch to {
	case TicketPaid:
		return from == TicketReserved
	case TicketUsed:
		return from == TicketPaid
	case TicketCancelled:
		return from == TicketReserved || from == TicketPaid
	default:
		return false
	}
}
