package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
)

func GetScreenings(c *fiber.Ctx) error {
	db := database.DB

	var filter model.FilterScreening
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := db.Model(&model.Screening{}).
		Preload("Movie").
		Preload("Hall")
	if filter.MovieId != nil {
		query = query.Where("movie_id = ?", *filter.MovieId)
	}
	if filter.HallId != nil {
		query = query.Where("hall_id = ?", *filter.HallId)
	}
	if filter.Date != nil {
		dayStart := filter.Date.Truncate(24 * time.Hour)
		query = query.Where("start_time >= ? AND start_time < ?", dayStart, dayStart.Add(24*time.Hour))
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var screenings model.Screenings
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Order("start_time").Find(&screenings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       screenings,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// GetScreeningSeats returns the public seat map with per-seat prices and
// occupancy.
func GetScreeningSeats(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	entries, err := helper.FetchSeatMap(uint(id))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCREENING_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, entries)
}

func CreateScreening(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("CreateScreening").(model.CreateScreeningInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	var movie model.Movie
	if err := db.First(&movie, input.MovieId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	var hall model.Hall
	if err := db.First(&hall, input.HallId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.HALL_NOT_FOUND, err)
	}

	endTime := helper.ComputeEndTime(input.StartTime, movie.Duration)

	conflict, err := helper.HasHallConflict(db, input.HallId, input.StartTime, endTime, nil)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if conflict {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SCREENING_OVERLAP, errors.New("hall busy"))
	}

	vipPrice := input.VipPrice
	if vipPrice == 0 {
		vipPrice = input.BasePrice * 1.5
	}

	screening := model.Screening{
		MovieId:   input.MovieId,
		HallId:    input.HallId,
		StartTime: input.StartTime,
		EndTime:   endTime,
		BasePrice: input.BasePrice,
		VipPrice:  vipPrice,
	}
	if err := db.Create(&screening).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, screening)
}

func EditScreening(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("EditScreening").(model.EditScreeningInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}
	screeningId, ok := c.Locals("inputScreeningId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	var screening model.Screening
	if err := db.First(&screening, screeningId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCREENING_NOT_FOUND, err)
	}

	// Sold tickets pin the screening to its hall and slot, otherwise they
	// would point at seats of a hall nobody is sitting in.
	movesScreening := (input.HallId != nil && *input.HallId != screening.HallId) ||
		(input.StartTime != nil && !input.StartTime.Equal(screening.StartTime))
	if movesScreening {
		hasTickets, err := helper.ScreeningsHaveActiveTickets(db, []uint{screening.ID})
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if hasTickets {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.SCREENING_HAS_TICKETS, errors.New("screening has tickets"))
		}
	}

	if input.MovieId != nil {
		screening.MovieId = *input.MovieId
	}
	if input.HallId != nil {
		screening.HallId = *input.HallId
	}
	if input.StartTime != nil {
		screening.StartTime = *input.StartTime
	}
	if input.BasePrice != nil {
		screening.BasePrice = *input.BasePrice
	}
	if input.VipPrice != nil {
		screening.VipPrice = *input.VipPrice
	}

	var movie model.Movie
	if err := db.First(&movie, screening.MovieId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	screening.EndTime = helper.ComputeEndTime(screening.StartTime, movie.Duration)

	conflict, err := helper.HasHallConflict(db, screening.HallId, screening.StartTime, screening.EndTime, &screening.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if conflict {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SCREENING_OVERLAP, errors.New("hall busy"))
	}

	if err := db.Save(&screening).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, screening)
}

func DeleteScreenings(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	hasTickets, err := helper.ScreeningsHaveActiveTickets(db, input.IDs)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if hasTickets {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SCREENING_HAS_TICKETS, errors.New("screening has tickets"))
	}

	if err := db.Delete(&model.Screening{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
