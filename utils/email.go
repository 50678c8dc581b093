package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// PaymentRequiredData feeds the acceptance notification template.
type PaymentRequiredData struct {
	ContactName   string
	ReservationNo int
	EventDate     string
	TimeSlot      string
	TotalAmount   float64
	DetailLink    string
}

const paymentRequiredTemplate = `
<h2>Your catering reservation #{{.ReservationNo}} has been accepted</h2>
<p>Hi {{.ContactName}},</p>
<p>Your reservation for {{.EventDate}} ({{.TimeSlot}}) was accepted.
To confirm your booking, please settle the amount due of <b>{{.TotalAmount}}</b>.</p>
<p><a href="{{.DetailLink}}">View your reservation</a></p>
`

// PasswordResetData feeds the reset-link template.
type PasswordResetData struct {
	ContactName string
	ResetLink   string
}

const passwordResetTemplate = `
<h2>Password reset requested</h2>
<p>Hi {{.ContactName}},</p>
<p>Use the link below to choose a new password. The link expires in 30 minutes.</p>
<p><a href="{{.ResetLink}}">Reset password</a></p>
<p>If you did not request this, ignore this email.</p>
`

const paymentReminderTemplate = `
<h2>Payment reminder for reservation #{{.ReservationNo}}</h2>
<p>Hi {{.ContactName}},</p>
<p>Your reservation for {{.EventDate}} ({{.TimeSlot}}) is still awaiting payment
of <b>{{.TotalAmount}}</b>. Unpaid reservations may be released.</p>
<p><a href="{{.DetailLink}}">Pay now</a></p>
`

// SendPaymentRequiredEmail notifies the customer that an accepted reservation
// now requires payment. Runs async; a failure is logged and never rolls back
// the acceptance.
func SendPaymentRequiredEmail(to string, data PaymentRequiredData) {
	go sendTemplate(to, "Reservation #"+strconv.Itoa(data.ReservationNo)+" accepted - payment required", paymentRequiredTemplate, data)
}

// SendPaymentReminderEmail is the hourly sweep follow-up for accepted but
// unpaid reservations.
func SendPaymentReminderEmail(to string, data PaymentRequiredData) {
	go sendTemplate(to, "Payment reminder for reservation #"+strconv.Itoa(data.ReservationNo), paymentReminderTemplate, data)
}

// SendPasswordResetEmail delivers the reset link. Async like the rest.
func SendPasswordResetEmail(to string, data PasswordResetData) {
	go sendTemplate(to, "Reset your password", passwordResetTemplate, data)
}

func sendTemplate(to, subject, tmplBody string, data any) {
	tmpl, err := template.New("email").Parse(tmplBody)
	if err != nil {
		log.Printf("email template parse error: %v", err)
		return
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		log.Printf("email template render error: %v", err)
		return
	}

	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	port, _ := strconv.Atoi(portStr)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("email send error: %v", err)
	}
}
