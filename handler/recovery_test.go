package handler

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/validate"
)

func recoveryApp() *fiber.App {
	app := fiber.New()
	app.Post("/auth/forgot-password", validate.ForgotPassword(), ForgotPassword)
	return app
}

func TestForgotPasswordRateLimited(t *testing.T) {
	db := setupTestDB(t)

	chatId := int64(4242)
	user := model.User{
		Name: "Լիլիթ", Phone: "077700700", Password: "hash",
		Role: "user", IsActive: true, TelegramChatId: &chatId,
	}
	require.NoError(t, db.Create(&user).Error)

	for i := 0; i < helper.ResetRequestLimit; i++ {
		_, err := helper.IssueResetToken(db, user.ID, model.ResetKindOTP)
		require.NoError(t, err)
	}

	app := recoveryApp()
	req := jsonRequest(t, "POST", "/auth/forgot-password", fiber.Map{"phone": "077700700"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestForgotPasswordNeverRevealsRegistration(t *testing.T) {
	setupTestDB(t)

	app := recoveryApp()
	req := jsonRequest(t, "POST", "/auth/forgot-password", fiber.Map{"phone": "077121212"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["success"])
	_, leaked := data["hasTelegram"]
	assert.False(t, leaked, "unknown phones get the bare success payload")
}
