package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema_booking/model"
)

func TestCountActiveSeatTickets(t *testing.T) {
	db := setupTestDB(t)
	start := time.Now().Add(2 * time.Hour)
	screening, seats := seedScreeningWithSeats(t, db, "hall-count", start)
	other, _ := seedScreeningWithSeats(t, db, "hall-count-2", start)

	order := model.Order{Code: GenerateOrderCode(), Status: model.OrderPending}
	require.NoError(t, db.Create(&order).Error)

	ticket := model.Ticket{
		Code:        GenerateTicketCode(),
		ScreeningId: screening.ID,
		SeatId:      seats[0].ID,
		OrderId:     order.ID,
		Price:       2000,
		Status:      model.TicketPaid,
	}
	require.NoError(t, db.Create(&ticket).Error)

	count, err := CountActiveSeatTickets(db, screening.ID, []uint{seats[0].ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "paid ticket keeps the seat taken")

	count, err = CountActiveSeatTickets(db, screening.ID, []uint{seats[1].ID})
	require.NoError(t, err)
	assert.Zero(t, count, "free seat of the same screening")

	count, err = CountActiveSeatTickets(db, other.ID, []uint{seats[0].ID})
	require.NoError(t, err)
	assert.Zero(t, count, "same seat id on another screening is free")

	require.NoError(t, db.Model(&ticket).Update("status", model.TicketCancelled).Error)
	count, err = CountActiveSeatTickets(db, screening.ID, []uint{seats[0].ID})
	require.NoError(t, err)
	assert.Zero(t, count, "cancelled ticket releases the seat")
}

func TestScreeningsHaveActiveTickets(t *testing.T) {
	db := setupTestDB(t)
	start := time.Now().Add(2 * time.Hour)
	screening, seats := seedScreeningWithSeats(t, db, "hall-guard", start)

	order := model.Order{Code: GenerateOrderCode(), Status: model.OrderCompleted}
	require.NoError(t, db.Create(&order).Error)

	ticket := model.Ticket{
		Code:        GenerateTicketCode(),
		ScreeningId: screening.ID,
		SeatId:      seats[0].ID,
		OrderId:     order.ID,
		Price:       2000,
		Status:      model.TicketUsed,
	}
	require.NoError(t, db.Create(&ticket).Error)

	has, err := ScreeningsHaveActiveTickets(db, []uint{screening.ID})
	require.NoError(t, err)
	assert.True(t, has, "a used ticket still pins the screening")

	require.NoError(t, db.Model(&ticket).Update("status", model.TicketCancelled).Error)
	has, err = ScreeningsHaveActiveTickets(db, []uint{screening.ID})
	require.NoError(t, err)
	assert.False(t, has)
}
