package model

import "time"

const (
	OrderPending   = "PENDING"
	OrderCompleted = "COMPLETED"
	OrderCancelled = "CANCELLED"
)

type Product struct {
	DTO
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageUrl    string  `json:"imageUrl"`
	IsAvailable bool    `gorm:"default:true" json:"isAvailable"`
}

type Products []Product

type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,min=0"`
	ImageUrl    string  `json:"imageUrl"`
}

type EditProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	ImageUrl    *string  `json:"imageUrl"`
	IsAvailable *bool    `json:"isAvailable"`
}

// Order belongs to a registered user or, for walk-in sales, carries the
// guest's contact details instead.
type Order struct {
	DTO
	Code          string      `gorm:"uniqueIndex;size:20;not null" json:"code"`
	UserId        *uint       `gorm:"index" json:"userId"`
	CustomerName  string      `gorm:"size:100" json:"customerName,omitempty"`
	CustomerPhone string      `gorm:"size:20" json:"customerPhone,omitempty"`
	CustomerEmail string      `gorm:"size:100" json:"customerEmail,omitempty"`
	Status        string      `gorm:"size:12;not null;default:'PENDING'" json:"status"`
	TotalAmount   float64     `gorm:"not null;default:0" json:"totalAmount"`
	PaidAt        *time.Time  `json:"paidAt,omitempty"`
	Tickets       []Ticket    `gorm:"foreignKey:OrderId" json:"tickets,omitempty"`
	Items         []OrderItem `gorm:"foreignKey:OrderId" json:"items,omitempty"`
	User          *User       `gorm:"foreignKey:UserId" json:"-"`
}

type Orders []Order

type OrderItem struct {
	DTO
	OrderId   uint    `gorm:"not null;index" json:"orderId"`
	ProductId uint    `gorm:"not null" json:"productId"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unitPrice"`
	Product   Product `gorm:"foreignKey:ProductId" json:"product,omitempty"`
}

type BookSeatsInput struct {
	ScreeningId uint   `json:"screeningId" validate:"required"`
	SeatIds     []uint `json:"seatIds" validate:"required,min=1,max=10"`

	// Guest contact, required when the caller is not authenticated.
	CustomerName  string `json:"customerName" validate:"omitempty,min=2,max=100"`
	CustomerPhone string `json:"customerPhone" validate:"omitempty,min=6,max=20"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
}

type AddOrderItemInput struct {
	ProductId uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1,max=20"`
}

type FilterOrder struct {
	Pagination
	Status string `query:"status"`
	UserId *uint  `query:"userId"`
}
