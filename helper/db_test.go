package helper

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"cinema_booking/database"
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

func seedUser(t *testing.T, db *gorm.DB, phone string) model.User {
	t.Helper()
	user := model.User{
		Name:     "Արամ",
		Phone:    phone,
		Password: "hash",
		Role:     "user",
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedScreeningWithSeats(t *testing.T, db *gorm.DB, hallName string, start time.Time) (model.Screening, []model.Seat) {
	t.Helper()

	movie := model.Movie{Title: "Արև " + hallName, Slug: "arev-" + hallName, Duration: 105}
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
		EndTime:   ComputeEndTime(start, movie.Duration),
		BasePrice: 2000,
		VipPrice:  3000,
	}
	require.NoError(t, db.Create(&screening).Error)
	return screening, seats
}
