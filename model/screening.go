package model

import "time"

type Screening struct {
	DTO
	MovieId   uint      `gorm:"not null;index" json:"movieId"`
	HallId    uint      `gorm:"not null;index" json:"hallId"`
	StartTime time.Time `gorm:"not null;index" json:"startTime"`
	EndTime   time.Time `gorm:"not null" json:"endTime"`
	BasePrice float64   `gorm:"not null" json:"basePrice"`
	VipPrice  float64   `gorm:"not null" json:"vipPrice"`
	Movie     Movie     `gorm:"foreignKey:MovieId" json:"movie,omitempty"`
	Hall      Hall      `gorm:"foreignKey:HallId" json:"hall,omitempty"`
	Tickets   []Ticket  `gorm:"foreignKey:ScreeningId" json:"-"`
}

type Screenings []Screening

type CreateScreeningInput struct {
	MovieId   uint      `json:"movieId" validate:"required"`
	HallId    uint      `json:"hallId" validate:"required"`
	StartTime time.Time `json:"startTime" validate:"required"`
	BasePrice float64   `json:"basePrice" validate:"required,min=0"`
	VipPrice  float64   `json:"vipPrice" validate:"omitempty,min=0"`
}

type EditScreeningInput struct {
	MovieId   *uint      `json:"movieId"`
	HallId    *uint      `json:"hallId"`
	StartTime *time.Time `json:"startTime"`
	BasePrice *float64   `json:"basePrice" validate:"omitempty,min=0"`
	VipPrice  *float64   `json:"vipPrice" validate:"omitempty,min=0"`
}

type FilterScreening struct {
	Pagination
	MovieId *uint      `query:"movieId"`
	HallId  *uint      `query:"hallId"`
	Date    *time.Time `query:"date"`
}

// SeatMapEntry is one seat in the public seat-map view of a screening.
type SeatMapEntry struct {
	SeatId   uint    `json:"seatId"`
	Row      string  `json:"row"`
	Number   int     `json:"number"`
	SeatType string  `json:"seatType"`
	Price    float64 `json:"price"`
	Taken    bool    `json:"taken"`
}
