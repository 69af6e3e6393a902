package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body string) error {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SendOTPEmail mails the verification code issued at signup
func SendOTPEmail(to, code string) error {
	body := fmt.Sprintf(`
		<p>Welcome!</p>
		<p>Your verification code is <strong>%s</strong>.</p>
		<p>Enter it to verify your account and start booking services.</p>
	`, code)
	return SendEmail(to, "Verify your account", body)
}
