package helper

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/jordan-wright/email"

	"cinema_booking/config"
	"cinema_booking/model"
)

// NotifyAdminsAboutContact forwards a contact-form submission to the admin
// mailbox. Best effort, a mail failure never fails the request.
func NotifyAdminsAboutContact(contact model.Contact) {
	go func() {
		to := config.Config("ADMIN_NOTIFY_EMAIL")
		if to == "" {
			return
		}

		host := config.Config("SMTP_HOST")
		port := config.Config("SMTP_PORT")
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")

		e := email.NewEmail()
		e.From = config.Config("SMTP_FROM")
		e.To = []string{to}
		e.Subject = "Նոր հաղորդագրություն կայքից"
		e.Text = []byte(fmt.Sprintf(
			"Անուն: %s\nՀեռախոս: %s\nԷլ. փոստ: %s\n\n%s",
			contact.Name, contact.Phone, contact.Email, contact.Message,
		))

		addr := host + ":" + port
		if err := e.Send(addr, smtp.PlainAuth("", username, password, host)); err != nil {
			log.Printf("contact notify mail: %v", err)
		}
	}()
}
