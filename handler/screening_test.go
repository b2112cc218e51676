package handler

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema_booking/helper"
	"cinema_booking/middleware"
	"cinema_booking/model"
	"cinema_booking/validate"
)

func TestEditScreeningRejectsMoveWithSoldTickets(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db, "099000001")

	start := time.Now().Add(24 * time.Hour)
	fx := seedScreening(t, db, "hall-edit", start)
	otherHall := model.Hall{Name: "hall-edit-2"}
	require.NoError(t, db.Create(&otherHall).Error)

	order := model.Order{Code: helper.GenerateOrderCode(), Status: model.OrderCompleted}
	require.NoError(t, db.Create(&order).Error)
	ticket := model.Ticket{
		Code:        helper.GenerateTicketCode(),
		ScreeningId: fx.Screening.ID,
		SeatId:      fx.Seats[0].ID,
		OrderId:     order.ID,
		Price:       2000,
		Status:      model.TicketPaid,
	}
	require.NoError(t, db.Create(&ticket).Error)

	app := fiber.New()
	app.Put("/screening/:screeningId",
		middleware.Protected(), middleware.AdminOnly(),
		validate.EditScreening("screeningId"), EditScreening)

	// Hall change with a paid ticket must be refused, the ticket references
	// a seat of the old hall.
	req := jsonRequest(t, "PUT", "/screening/1", fiber.Map{"hallId": otherHall.ID})
	req.AddCookie(authCookie(t, admin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Moving the slot is refused the same way.
	newStart := start.Add(3 * time.Hour)
	req = jsonRequest(t, "PUT", "/screening/1", fiber.Map{"startTime": newStart})
	req.AddCookie(authCookie(t, admin))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var unchanged model.Screening
	require.NoError(t, db.First(&unchanged, fx.Screening.ID).Error)
	assert.Equal(t, fx.Hall.ID, unchanged.HallId)
	assert.WithinDuration(t, start, unchanged.StartTime, time.Second)

	// Price edits stay allowed, nobody's seat moves.
	req = jsonRequest(t, "PUT", "/screening/1", fiber.Map{"basePrice": 2500})
	req.AddCookie(authCookie(t, admin))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&unchanged, fx.Screening.ID).Error)
	assert.Equal(t, float64(2500), unchanged.BasePrice)
}
