package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"

	"cinema_booking/config"
)

// OrderConfirmationData is the payload for the confirmation template.
type OrderConfirmationData struct {
	OrderCode   string
	MovieTitle  string
	HallName    string
	Screening   string
	Seats       string
	Products    string
	TotalAmount float64
}

// SendOrderConfirmationEmail sends the paid-order confirmation with the
// check-in QR attached. Runs async so the handler response is not delayed.
func SendOrderConfirmationEmail(to string, data OrderConfirmationData, qrPNG []byte) {
	go func() {
		tmpl, err := template.ParseFiles("templates/order_confirmation.html")
		if err != nil {
			log.Printf("order email: load template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("order email: render template: %v", err)
			return
		}

		host := config.Config("SMTP_HOST")
		port, _ := strconv.Atoi(config.Config("SMTP_PORT"))
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.Config("SMTP_FROM")

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Տոմսերի հաստատում #"+data.OrderCode)
		m.SetBody("text/html", body.String())
		if len(qrPNG) > 0 {
			m.Attach("ticket_qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrPNG)
				return err
			}))
		}

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("order email: send: %v", err)
		}
	}()
}
