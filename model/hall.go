package model

const (
	SeatStandard = "standard"
	SeatVip      = "vip"
	SeatDisabled = "disabled"
)

type Hall struct {
	DTO
	Name  string `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
	Seats []Seat `gorm:"foreignKey:HallId" json:"seats,omitempty"`
}

type Seat struct {
	DTO
	HallId   uint   `gorm:"not null;uniqueIndex:idx_hall_row_number" json:"hallId"`
	Row      string `gorm:"size:4;not null;uniqueIndex:idx_hall_row_number" json:"row"` // e.g. "A", "B"
	Number   int    `gorm:"not null;uniqueIndex:idx_hall_row_number" json:"number"`
	SeatType string `gorm:"size:10;not null;default:'standard'" json:"seatType"`
	Hall     Hall   `gorm:"foreignKey:HallId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

type CreateHallInput struct {
	Name      string `json:"name" validate:"required"`
	Rows      string `json:"rows" validate:"required"` // row letters, e.g. "ABCDEFGH"
	Columns   int    `json:"columns" validate:"required,min=1,max=40"`
	VipRowMin string `json:"vipRowMin" validate:"omitempty,len=1"`
	VipRowMax string `json:"vipRowMax" validate:"omitempty,len=1"`
}

type EditSeatInput struct {
	SeatType string `json:"seatType" validate:"required,oneof=standard vip disabled"`
}
