package helper

import (
	"crypto/rand"
	"math/big"
	"time"

	"gorm.io/gorm"

	"cinema_booking/model"
)

const (
	OTPCodeLength      = 6
	SessionTokenLength = 12
	OTPTTL             = 10 * time.Minute
	SessionTokenTTL    = 15 * time.Minute

	// Reset requests allowed per user inside the rate window.
	ResetRequestLimit  = 5
	ResetRequestWindow = time.Hour
)

// GenerateNumericCode returns a crypto-random string of n decimal digits.
// Leading zeros are kept, every code has exactly n characters.
func GenerateNumericCode(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits), nil
}

// CountRecentResetRequests counts OTP rows issued for the user inside the
// rate window, including used and expired ones.
func CountRecentResetRequests(db *gorm.DB, userId uint) (int64, error) {
	var count int64
	since := time.Now().Add(-ResetRequestWindow)
	err := db.Model(&model.PasswordResetToken{}).
		Where("user_id = ? AND kind = ? AND created_at > ?", userId, model.ResetKindOTP, since).
		Count(&count).Error
	return count, err
}

// InvalidatePendingTokens marks every live token of the given kind as used,
// so only the most recent code can ever verify.
func InvalidatePendingTokens(db *gorm.DB, userId uint, kind string) error {
	return db.Model(&model.PasswordResetToken{}).
		Where("user_id = ? AND kind = ? AND used = ?", userId, kind, false).
		Update("used", true).Error
}

// IssueResetToken creates a fresh token row of the given kind and returns it.
func IssueResetToken(db *gorm.DB, userId uint, kind string) (*model.PasswordResetToken, error) {
	length := OTPCodeLength
	ttl := OTPTTL
	if kind == model.ResetKindSession {
		length = SessionTokenLength
		ttl = SessionTokenTTL
	}

	code, err := GenerateNumericCode(length)
	if err != nil {
		return nil, err
	}

	token := model.PasswordResetToken{
		UserId:    userId,
		Token:     code,
		Kind:      kind,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := db.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// FindLiveToken looks up an unused, unexpired token row by value and kind.
func FindLiveToken(db *gorm.DB, userId uint, value, kind string) (*model.PasswordResetToken, error) {
	var token model.PasswordResetToken
	err := db.Where("user_id = ? AND token = ? AND kind = ? AND used = ? AND expires_at > ?",
		userId, value, kind, false, time.Now()).
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// FindLiveSessionToken resolves a session token without knowing the user.
func FindLiveSessionToken(db *gorm.DB, value string) (*model.PasswordResetToken, error) {
	var token model.PasswordResetToken
	err := db.Where("token = ? AND kind = ? AND used = ? AND expires_at > ?",
		value, model.ResetKindSession, false, time.Now()).
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}
