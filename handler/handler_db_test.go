package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.PasswordResetToken{},
		&model.Hall{}, &model.Seat{},
		&model.Movie{}, &model.Screening{},
		&model.Ticket{}, &model.Product{},
		&model.Order{}, &model.OrderItem{},
	))
	database.DB = db
	return db
}

func seedAccount(t *testing.T, db *gorm.DB, phone, role string) model.User {
	t.Helper()
	user := model.User{
		Name:     "Անի",
		Phone:    phone,
		Password: "hash",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func authCookie(t *testing.T, user model.User) *http.Cookie {
	t.Helper()
	token, err := helper.GenerateAccessToken(model.TokenClaim{
		UserId: user.ID,
		Phone:  user.Phone,
		Role:   user.Role,
	})
	require.NoError(t, err)
	return &http.Cookie{Name: "access_token", Value: token}
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type screeningFixture struct {
	Movie     model.Movie
	Hall      model.Hall
	Seats     []model.Seat
	Screening model.Screening
}

func seedScreening(t *testing.T, db *gorm.DB, hallName string, start time.Time) screeningFixture {
	t.Helper()

	movie := model.Movie{Title: "Գարուն " + hallName, Slug: "garun-" + hallName, Duration: 90}
	require.NoError(t, db.Create(&movie).Error)

	hall := model.Hall{Name: hallName}
	require.NoError(t, db.Create(&hall).Error)

	seats := []model.Seat{
		{HallId: hall.ID, Row: "A", Number: 1},
		{HallId: hall.ID, Row: "A", Number: 2},
	}
	require.NoError(t, db.Create(&seats).Error)

	screening := model.Screening{
		MovieId:   movie.ID,
		HallId:    hall.ID,
		StartTime: start,
		EndTime:   helper.ComputeEndTime(start, movie.Duration),
		BasePrice: 2000,
		VipPrice:  3000,
	}
	require.NoError(t, db.Create(&screening).Error)

	return screeningFixture{Movie: movie, Hall: hall, Seats: seats, Screening: screening}
}

func seedAdmin(t *testing.T, db *gorm.DB, phone string) model.User {
	return seedAccount(t, db, phone, constants.ROLE_ADMIN)
}
