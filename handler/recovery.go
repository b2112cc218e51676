package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
)

// ForgotPassword starts the phone-based recovery flow. The code goes out
// over the linked Telegram chat. The response never reveals whether a phone
// is registered.
func ForgotPassword(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("ForgotPassword").(model.ForgotPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	user, err := helper.GetUserByPhone(input.Phone)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"success": true})
	}

	if user.TelegramChatId == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"success":     true,
			"hasTelegram": false,
		})
	}

	recent, err := helper.CountRecentResetRequests(db, user.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if recent >= helper.ResetRequestLimit {
		return utils.ErrorResponse(c, fiber.StatusTooManyRequests, constants.TOO_MANY_RESET_REQUESTS, errors.New("rate limit exceeded"))
	}

	if err := helper.InvalidatePendingTokens(db, user.ID, model.ResetKindOTP); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	token, err := helper.IssueResetToken(db, user.ID, model.ResetKindOTP)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	text := fmt.Sprintf(
		"Գաղտնաբառի վերականգնման կոդ՝ <b>%s</b>\nԿոդը վավեր է 10 րոպե։",
		token.Token,
	)
	if err := helper.Telegram().SendMessage(context.Background(), *user.TelegramChatId, text, nil); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.OTP_DELIVERY_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"success":     true,
		"hasTelegram": true,
	})
}

// VerifyResetCode exchanges a live OTP for a short-lived session token that
// authorizes the actual password change.
func VerifyResetCode(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("VerifyResetCode").(model.VerifyResetCodeRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	user, err := helper.GetUserByPhone(input.Phone)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_OR_EXPIRED_CODE, errors.New("unknown phone"))
	}

	otp, err := helper.FindLiveToken(db, user.ID, input.Code, model.ResetKindOTP)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_OR_EXPIRED_CODE, errors.New("code invalid"))
	}

	otp.Used = true
	if err := db.Save(otp).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	session, err := helper.IssueResetToken(db, user.ID, model.ResetKindSession)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"resetToken": session.Token,
	})
}

// ResetPassword finishes the flow with a session token from VerifyResetCode.
func ResetPassword(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("ResetPassword").(model.ResetPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	session, err := helper.FindLiveSessionToken(db, input.Token)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_OR_EXPIRED_CODE, errors.New("token invalid"))
	}

	var user model.User
	if err := db.First(&user, session.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	session.Used = true
	if err := db.Save(session).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	user.Password = hash
	if err := db.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"success": true})
}
