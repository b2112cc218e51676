package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
)

// BookSeats claims seats for a screening. The seat rows are locked FOR
// UPDATE inside the transaction so two concurrent requests for the same seat
// serialize, the loser sees the winner's ticket and gets a conflict.
// Unauthenticated callers book as walk-in guests with contact details.
func BookSeats(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("BookSeats").(model.BookSeatsInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	info := helper.GetOptionalUserFromToken(c)
	if info.UserId == 0 {
		if input.CustomerName == "" || input.CustomerPhone == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.GUEST_CONTACT_REQUIRED, errors.New("guest contact missing"))
		}
		if input.CustomerEmail != "" && !helper.ValidEmail(input.CustomerEmail) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_EMAIL, errors.New("bad email"))
		}
	}

	var screening model.Screening
	if err := db.First(&screening, input.ScreeningId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCREENING_NOT_FOUND, err)
	}
	// Walk-in sales stay open until the screening ends.
	if time.Now().After(screening.EndTime) {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SCREENING_ENDED, errors.New("screening over"))
	}

	tx := db.Begin()

	var seats []model.Seat
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ? AND hall_id = ? AND seat_type != ?", input.SeatIds, screening.HallId, model.SeatDisabled).
		Find(&seats).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(seats) != len(input.SeatIds) {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SEAT_NOT_FOUND, errors.New("seat missing or disabled"))
	}

	takenCount, err := helper.CountActiveSeatTickets(tx, screening.ID, input.SeatIds)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if takenCount > 0 {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SEAT_TAKEN, errors.New("seat already claimed"))
	}

	order := model.Order{
		Code:   helper.GenerateOrderCode(),
		Status: model.OrderPending,
	}
	if info.UserId != 0 {
		userId := info.UserId
		order.UserId = &userId
	} else {
		order.CustomerName = input.CustomerName
		order.CustomerPhone = helper.NormalizePhone(input.CustomerPhone)
		order.CustomerEmail = input.CustomerEmail
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	tickets := make([]model.Ticket, 0, len(seats))
	for _, seat := range seats {
		tickets = append(tickets, model.Ticket{
			Code:        helper.GenerateTicketCode(),
			ScreeningId: screening.ID,
			SeatId:      seat.ID,
			UserId:      order.UserId,
			OrderId:     order.ID,
			Price:       helper.SeatPrice(&screening, seat.SeatType),
			Status:      model.TicketReserved,
		})
	}
	if err := tx.Create(&tickets).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	order.TotalAmount = helper.ComputeOrderTotal(tickets, nil)
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	tx.Commit()

	helper.PublishSeatUpdate(tickets)

	order.Tickets = tickets
	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

// CheckinTicket marks a paid ticket as used at the hall entrance (admin).
func CheckinTicket(c *fiber.Ctx) error {
	db := database.DB

	code := c.Params("code")
	if code == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing code"))
	}

	var ticket model.Ticket
	if err := db.Where("code = ?", code).
		Preload("Screening.Movie").
		Preload("Seat").
		First(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	if ticket.Status == model.TicketUsed {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TICKET_ALREADY_USED, errors.New("already used"))
	}
	if time.Now().After(ticket.Screening.EndTime) {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SCREENING_ENDED, errors.New("screening over"))
	}
	if !model.CanTransition(ticket.Status, model.TicketUsed) {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Տոմսը վճարված չէ", errors.New("ticket not paid"))
	}

	ticket.Status = model.TicketUsed
	if err := db.Save(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

// GetTicketQR renders the check-in QR for a ticket belonging to the caller.
func GetTicketQR(c *fiber.Ctx) error {
	db := database.DB

	code := c.Params("code")

	info, _, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_FOUND_RECORDS, err)
	}

	var ticket model.Ticket
	if err := db.Joins("JOIN orders ON orders.id = tickets.order_id").
		Where("tickets.code = ? AND orders.user_id = ?", code, info.UserId).
		First(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	png, err := utils.GenerateQRCode(ticket.Code, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
