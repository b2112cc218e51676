package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"
)

func GetHalls(c *fiber.Ctx) error {
	db := database.DB

	var halls []model.Hall
	if err := db.Preload("Seats", func(q *gorm.DB) *gorm.DB {
		return q.Order("row, number")
	}).Find(&halls).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, halls)
}

// CreateHall creates a hall and generates its full seat grid in one
// transaction.
func CreateHall(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("CreateHall").(model.CreateHallInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	tx := db.Begin()

	hall := model.Hall{Name: input.Name}
	if err := tx.Create(&hall).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	seats := make([]model.Seat, 0, len(input.Rows)*input.Columns)
	for _, row := range input.Rows {
		seatType := model.SeatStandard
		if input.VipRowMin != "" && input.VipRowMax != "" &&
			string(row) >= input.VipRowMin && string(row) <= input.VipRowMax {
			seatType = model.SeatVip
		}
		for number := 1; number <= input.Columns; number++ {
			seats = append(seats, model.Seat{
				HallId:   hall.ID,
				Row:      string(row),
				Number:   number,
				SeatType: seatType,
			})
		}
	}
	if err := tx.Create(&seats).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	tx.Commit()

	hall.Seats = seats
	return utils.SuccessResponse(c, fiber.StatusCreated, hall)
}

// EditSeat changes a seat's type. Marking a seat disabled removes it from
// sale without touching existing tickets.
func EditSeat(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("EditSeat").(model.EditSeatInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}
	seatId, ok := c.Locals("inputSeatId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	var seat model.Seat
	if err := db.First(&seat, seatId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SEAT_NOT_FOUND, err)
	}

	seat.SeatType = input.SeatType
	if err := db.Save(&seat).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, seat)
}

func DeleteHalls(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	var screeningCount int64
	if err := db.Model(&model.Screening{}).Where("hall_id IN ?", input.IDs).Count(&screeningCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if screeningCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Դահլիճն ունի պլանավորված սեանսներ", errors.New("hall has screenings"))
	}

	if err := db.Delete(&model.Hall{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
