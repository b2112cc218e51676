package helper

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cinema_booking/config"
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
)

var JwtSecret = []byte(config.Config("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// NormalizePhone strips spaces, dashes and a leading +374/374 country
// prefix so that "+374 77 123456" and "077123456" resolve to one account.
func NormalizePhone(phone string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, phone)
	if strings.HasPrefix(cleaned, "+374") {
		cleaned = "0" + cleaned[4:]
	} else if strings.HasPrefix(cleaned, "374") && len(cleaned) == 11 {
		cleaned = "0" + cleaned[3:]
	}
	return cleaned
}

func GetUserByPhone(phone string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Phone: NormalizePhone(phone)}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["phone"] = tokenClaim.Phone
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(JwtSecret)
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["phone"] = tokenClaim.Phone
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(JwtSecret)
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})
}

// GetInfoUserFromToken resolves the JWT stashed by the Protected middleware
// to a live user row. The second return is the admin flag.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, bool, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false, errors.New("missing token")
	}
	claims := token.Claims.(jwt.MapClaims)
	userIdFloat, ok := claims["userId"].(float64)
	if !ok {
		return model.TokenClaim{}, false, errors.New("invalid token claims")
	}

	var user model.User
	db := database.DB
	if err := db.First(&user, uint(userIdFloat)).Error; err != nil {
		return model.TokenClaim{}, false, err
	}
	if !user.IsActive {
		return model.TokenClaim{}, false, errors.New(constants.ACCOUNT_NOT_ACTIVE)
	}

	info := model.TokenClaim{
		UserId: user.ID,
		Phone:  user.Phone,
		Role:   user.Role,
	}
	return info, user.Role == constants.ROLE_ADMIN, nil
}

// GetOptionalUserFromToken is the guest-tolerant variant used on public
// routes behind OptionalJWT. A zero UserId means anonymous.
func GetOptionalUserFromToken(c *fiber.Ctx) model.TokenClaim {
	u := c.Locals("user")
	if u == nil {
		return model.TokenClaim{}
	}
	token, ok := u.(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}
	}
	userIdFloat, _ := claims["userId"].(float64)
	if userIdFloat == 0 {
		return model.TokenClaim{}
	}
	phone, _ := claims["phone"].(string)
	role, _ := claims["role"].(string)
	return model.TokenClaim{UserId: uint(userIdFloat), Phone: phone, Role: role}
}
