package model

import "time"

type User struct {
	DTO
	Name           string  `gorm:"not null" json:"name"`
	Phone          string  `gorm:"uniqueIndex;not null" json:"phone"`
	Email          *string `json:"email,omitempty"`
	Password       string  `gorm:"not null" json:"-"`
	Role           string  `gorm:"not null;default:'user'" json:"role"`
	TelegramChatId *int64  `gorm:"index" json:"-"`
	IsActive       bool    `gorm:"default:true" json:"isActive"`
}

type Users []User

type RegisterUserInput struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,min=6"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserChangePassword struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	RepeatPassword  string `json:"repeatPassword" validate:"required,eqfield=NewPassword"`
}

type FilterUser struct {
	Pagination
	SearchKey string `query:"searchKey"`
	Phone     string `query:"phone"`
	Active    *bool  `query:"active"`
}

// Password recovery token kinds. An "otp" row is the 6-digit code delivered
// over Telegram; a "session" row is the second-stage 12-digit token that
// authorizes the final password change.
const (
	ResetKindOTP     = "otp"
	ResetKindSession = "session"
)

type PasswordResetToken struct {
	DTO
	UserId    uint      `gorm:"not null;index" json:"userId"`
	Token     string    `gorm:"size:20;not null;index" json:"-"`
	Kind      string    `gorm:"size:10;not null;default:'otp'" json:"kind"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Used      bool      `gorm:"not null;default:false" json:"used"`
	User      User      `gorm:"foreignKey:UserId" json:"-"`
}

type ForgotPasswordRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type VerifyResetCodeRequest struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required,len=12,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
