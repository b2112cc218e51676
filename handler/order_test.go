package handler

import (
	"fmt"
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

func TestCancelOrderRecomputesTotal(t *testing.T) {
	db := setupTestDB(t)
	user := seedAccount(t, db, "077600600", "user")

	start := time.Now().Add(24 * time.Hour)
	fx := seedScreening(t, db, "hall-cancel", start)

	product := model.Product{Name: "Պոպկոռն", Price: 500, IsAvailable: true}
	require.NoError(t, db.Create(&product).Error)

	userId := user.ID
	order := model.Order{
		Code:   helper.GenerateOrderCode(),
		UserId: &userId,
		Status: model.OrderPending,
	}
	require.NoError(t, db.Create(&order).Error)

	tickets := []model.Ticket{
		{Code: helper.GenerateTicketCode(), ScreeningId: fx.Screening.ID, SeatId: fx.Seats[0].ID, UserId: &userId, OrderId: order.ID, Price: 2000, Status: model.TicketReserved},
		{Code: helper.GenerateTicketCode(), ScreeningId: fx.Screening.ID, SeatId: fx.Seats[1].ID, UserId: &userId, OrderId: order.ID, Price: 2000, Status: model.TicketReserved},
	}
	require.NoError(t, db.Create(&tickets).Error)

	item := model.OrderItem{OrderId: order.ID, ProductId: product.ID, Quantity: 2, UnitPrice: product.Price}
	require.NoError(t, db.Create(&item).Error)

	order.TotalAmount = helper.ComputeOrderTotal(tickets, []model.OrderItem{item})
	require.NoError(t, db.Save(&order).Error)
	require.Equal(t, float64(5000), order.TotalAmount)

	app := fiber.New()
	app.Post("/order/:orderId/cancel",
		middleware.Protected(), validate.GetById("orderId"), CancelOrder)

	req := jsonRequest(t, "POST", fmt.Sprintf("/order/%d/cancel", order.ID), fiber.Map{})
	req.AddCookie(authCookie(t, user))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reloaded model.Order
	require.NoError(t, db.Preload("Tickets").Preload("Items").First(&reloaded, order.ID).Error)
	assert.Equal(t, model.OrderCancelled, reloaded.Status)
	for _, ticket := range reloaded.Tickets {
		assert.Equal(t, model.TicketCancelled, ticket.Status)
	}

	// The stored total must match a fresh recompute over the children:
	// cancelled tickets drop out, the concession items stay.
	assert.Equal(t, float64(1000), reloaded.TotalAmount)
	assert.Equal(t, helper.ComputeOrderTotal(reloaded.Tickets, reloaded.Items), reloaded.TotalAmount)
}
