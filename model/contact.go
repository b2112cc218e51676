package model

type Contact struct {
	DTO
	Name    string `gorm:"not null" json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`
}

type Contacts []Contact

type CreateContactInput struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"omitempty,min=6"`
	Email   string `json:"email" validate:"omitempty,email"`
	Message string `json:"message" validate:"required,min=5"`
}

type FAQ struct {
	DTO
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
	Position int    `gorm:"default:0" json:"position"`
}

type FAQs []FAQ

type CreateFAQInput struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Position int    `json:"position"`
}

type EditFAQInput struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Position *int    `json:"position"`
}
