package helper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"cinema_booking/config"
)

// TelegramClient is a thin Bot API client. Outgoing calls go through a rate
// limiter, Telegram allows roughly 30 messages per second per bot.
type TelegramClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

var telegramClient *TelegramClient

func Telegram() *TelegramClient {
	if telegramClient == nil {
		telegramClient = NewTelegramClient(config.Config("TELEGRAM_BOT_TOKEN"))
	}
	return telegramClient
}

func NewTelegramClient(token string) *TelegramClient {
	return &TelegramClient{
		baseURL: "https://api.telegram.org/bot" + token,
		http:    &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(25), 5),
	}
}

// WithBaseURL overrides the API endpoint, used by tests.
func (t *TelegramClient) WithBaseURL(url string) *TelegramClient {
	t.baseURL = url
	return t
}

type TelegramUpdate struct {
	UpdateId int64            `json:"update_id"`
	Message  *TelegramMessage `json:"message"`
}

type TelegramMessage struct {
	MessageId int64            `json:"message_id"`
	From      *TelegramUser    `json:"from"`
	Chat      TelegramChat     `json:"chat"`
	Text      string           `json:"text"`
	Contact   *TelegramContact `json:"contact"`
}

type TelegramUser struct {
	Id        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

type TelegramChat struct {
	Id int64 `json:"id"`
}

type TelegramContact struct {
	PhoneNumber string `json:"phone_number"`
	UserId      int64  `json:"user_id"`
}

type telegramResponse struct {
	Ok          bool   `json:"ok"`
	Description string `json:"description"`
}

type ReplyKeyboard struct {
	Keyboard        [][]KeyboardButton `json:"keyboard"`
	ResizeKeyboard  bool               `json:"resize_keyboard"`
	OneTimeKeyboard bool               `json:"one_time_keyboard"`
}

type KeyboardButton struct {
	Text           string `json:"text"`
	RequestContact bool   `json:"request_contact,omitempty"`
}

// SendMessage posts a text message to a chat. replyMarkup may be nil.
func (t *TelegramClient) SendMessage(ctx context.Context, chatId int64, text string, replyMarkup *ReplyKeyboard) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}

	payload := map[string]any{
		"chat_id":    chatId,
		"text":       text,
		"parse_mode": "HTML",
	}
	if replyMarkup != nil {
		payload["reply_markup"] = replyMarkup
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/sendMessage", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var apiResp telegramResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return err
	}
	if !apiResp.Ok {
		return fmt.Errorf("telegram sendMessage: %s", apiResp.Description)
	}
	return nil
}
