package validate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cinema_booking/constants"
	"cinema_booking/model"
	"cinema_booking/utils"
)

func BookSeats() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BookSeatsInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		seen := map[uint]bool{}
		for _, id := range input.SeatIds {
			if seen[id] {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Կրկնվող նստատեղ հարցումում",
					"field": "seatIds",
				})
			}
			seen[id] = true
		}

		c.Locals("BookSeats", input)
		return c.Next()
	}
}

func AddOrderItem(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.AddOrderItemInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("AddOrderItem", input)
		c.Locals("inputOrderId", uint(valueKey))
		return c.Next()
	}
}
