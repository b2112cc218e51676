package handler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
)

// TelegramWebhook receives Bot API updates. /start asks for the contact,
// a shared contact links the chat to the matching account, /tickets lists
// upcoming tickets, anything else gets /help.
func TelegramWebhook(c *fiber.Ctx) error {
	var update helper.TelegramUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid update", err)
	}
	if update.Message == nil {
		return c.SendStatus(fiber.StatusOK)
	}

	msg := update.Message
	chatId := msg.Chat.Id
	ctx := context.Background()
	tg := helper.Telegram()

	switch {
	case msg.Contact != nil:
		handleContactShare(ctx, tg, chatId, msg)
	case strings.HasPrefix(msg.Text, "/start"):
		keyboard := &helper.ReplyKeyboard{
			Keyboard: [][]helper.KeyboardButton{
				{{Text: "📱 Կիսվել հեռախոսահամարով", RequestContact: true}},
			},
			ResizeKeyboard:  true,
			OneTimeKeyboard: true,
		}
		if err := tg.SendMessage(ctx, chatId,
			"Բարև ձեզ 👋 Հաշիվը կապելու համար կիսվեք ձեր հեռախոսահամարով։", keyboard); err != nil {
			log.Printf("telegram /start reply: %v", err)
		}
	case strings.HasPrefix(msg.Text, "/tickets"):
		handleTicketsCommand(ctx, tg, chatId)
	default:
		if err := tg.SendMessage(ctx, chatId,
			"Հասանելի հրամաններ՝\n/start — կապել հաշիվը\n/tickets — իմ տոմսերը\n/help — օգնություն", nil); err != nil {
			log.Printf("telegram help reply: %v", err)
		}
	}

	// Telegram retries on non-200, always ack.
	return c.SendStatus(fiber.StatusOK)
}

func handleContactShare(ctx context.Context, tg *helper.TelegramClient, chatId int64, msg *helper.TelegramMessage) {
	// Only the chat owner's own contact links an account.
	if msg.From != nil && msg.Contact.UserId != msg.From.Id {
		tg.SendMessage(ctx, chatId, "Խնդրում ենք կիսվել ձեր սեփական հեռախոսահամարով։", nil)
		return
	}

	phone := helper.NormalizePhone(msg.Contact.PhoneNumber)
	user, err := helper.GetUserByPhone(phone)
	if err != nil || user == nil {
		tg.SendMessage(ctx, chatId,
			"Այս հեռախոսահամարով հաշիվ չի գտնվել։ Նախ գրանցվեք կայքում։", nil)
		return
	}

	user.TelegramChatId = &chatId
	if err := database.DB.Save(user).Error; err != nil {
		log.Printf("telegram link save: %v", err)
		tg.SendMessage(ctx, chatId, "Չհաջողվեց կապել հաշիվը, փորձեք կրկին։", nil)
		return
	}

	tg.SendMessage(ctx, chatId,
		fmt.Sprintf("Հաշիվը կապված է ✅ Բարև, %s։", user.Name), nil)
}

func handleTicketsCommand(ctx context.Context, tg *helper.TelegramClient, chatId int64) {
	db := database.DB

	var user model.User
	if err := db.Where("telegram_chat_id = ?", chatId).First(&user).Error; err != nil {
		tg.SendMessage(ctx, chatId, "Հաշիվը կապված չէ։ Ուղարկեք /start։", nil)
		return
	}

	var tickets []model.Ticket
	err := db.Joins("JOIN orders ON orders.id = tickets.order_id").
		Where("orders.user_id = ? AND tickets.status IN ?", user.ID,
			[]string{model.TicketReserved, model.TicketPaid}).
		Preload("Screening.Movie").
		Preload("Screening.Hall").
		Preload("Seat").
		Order("tickets.id DESC").
		Limit(10).
		Find(&tickets).Error
	if err != nil || len(tickets) == 0 {
		tg.SendMessage(ctx, chatId, "Գործող տոմսեր չկան։", nil)
		return
	}

	var sb strings.Builder
	sb.WriteString("Ձեր տոմսերը՝\n")
	for _, t := range tickets {
		sb.WriteString(fmt.Sprintf(
			"\n🎬 <b>%s</b>\n%s, %s, նստատեղ %s\nԿոդ՝ %s (%s)\n",
			t.Screening.Movie.Title,
			t.Screening.StartTime.Format("02.01.2006 15:04"),
			t.Screening.Hall.Name,
			helper.SeatLabel(t.Seat),
			t.Code,
			t.Status,
		))
	}
	tg.SendMessage(ctx, chatId, sb.String(), nil)
}
