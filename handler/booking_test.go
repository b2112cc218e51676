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

func bookingApp() *fiber.App {
	app := fiber.New()
	app.Post("/booking", middleware.OptionalJWT(), validate.BookSeats(), BookSeats)
	return app
}

func TestBookSeatsGuestRequiresContact(t *testing.T) {
	db := setupTestDB(t)
	fx := seedScreening(t, db, "hall-guest", time.Now().Add(24*time.Hour))

	app := bookingApp()
	req := jsonRequest(t, "POST", "/booking", fiber.Map{
		"screeningId": fx.Screening.ID,
		"seatIds":     []uint{fx.Seats[0].ID},
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBookSeatsGuestThenConflict(t *testing.T) {
	db := setupTestDB(t)
	fx := seedScreening(t, db, "hall-conflict", time.Now().Add(24*time.Hour))

	app := bookingApp()

	req := jsonRequest(t, "POST", "/booking", fiber.Map{
		"screeningId":   fx.Screening.ID,
		"seatIds":       []uint{fx.Seats[0].ID},
		"customerName":  "Սոնա",
		"customerPhone": "+374 77 123456",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var order model.Order
	require.NoError(t, db.Preload("Tickets").Order("id DESC").First(&order).Error)
	assert.Nil(t, order.UserId)
	assert.Equal(t, "Սոնա", order.CustomerName)
	assert.Equal(t, "077123456", order.CustomerPhone, "guest phone is normalized")
	require.Len(t, order.Tickets, 1)
	assert.Equal(t, model.TicketReserved, order.Tickets[0].Status)

	// Second request for the same seat loses.
	req = jsonRequest(t, "POST", "/booking", fiber.Map{
		"screeningId":   fx.Screening.ID,
		"seatIds":       []uint{fx.Seats[0].ID},
		"customerName":  "Տիգրան",
		"customerPhone": "077999999",
	})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// The neighbouring seat still sells.
	req = jsonRequest(t, "POST", "/booking", fiber.Map{
		"screeningId":   fx.Screening.ID,
		"seatIds":       []uint{fx.Seats[1].ID},
		"customerName":  "Տիգրան",
		"customerPhone": "077999999",
	})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCheckinRejectsEndedScreening(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db, "099000002")

	ended := seedScreening(t, db, "hall-ended", time.Now().Add(-4*time.Hour))
	running := seedScreening(t, db, "hall-running", time.Now().Add(-10*time.Minute))

	order := model.Order{Code: helper.GenerateOrderCode(), Status: model.OrderCompleted}
	require.NoError(t, db.Create(&order).Error)

	endedTicket := model.Ticket{
		Code: helper.GenerateTicketCode(), ScreeningId: ended.Screening.ID,
		SeatId: ended.Seats[0].ID, OrderId: order.ID, Price: 2000, Status: model.TicketPaid,
	}
	runningTicket := model.Ticket{
		Code: helper.GenerateTicketCode(), ScreeningId: running.Screening.ID,
		SeatId: running.Seats[0].ID, OrderId: order.ID, Price: 2000, Status: model.TicketPaid,
	}
	require.NoError(t, db.Create(&endedTicket).Error)
	require.NoError(t, db.Create(&runningTicket).Error)

	app := fiber.New()
	app.Post("/booking/ticket/:code/checkin",
		middleware.Protected(), middleware.AdminOnly(), CheckinTicket)

	req := jsonRequest(t, "POST", "/booking/ticket/"+endedTicket.Code+"/checkin", fiber.Map{})
	req.AddCookie(authCookie(t, admin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var untouched model.Ticket
	require.NoError(t, db.First(&untouched, endedTicket.ID).Error)
	assert.Equal(t, model.TicketPaid, untouched.Status)

	// A screening still running admits normally.
	req = jsonRequest(t, "POST", "/booking/ticket/"+runningTicket.Code+"/checkin", fiber.Map{})
	req.AddCookie(authCookie(t, admin))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	untouched = model.Ticket{}
	require.NoError(t, db.First(&untouched, runningTicket.ID).Error)
	assert.Equal(t, model.TicketUsed, untouched.Status)
}
