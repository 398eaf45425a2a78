package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"rentify/internal/domain/service"
)

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
	}
}

func (m *SMTPMailer) SendEnquiry(ctx context.Context, mail service.EnquiryMail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("Reply-To", mail.SenderEmail)
	msg.SetHeader("To", mail.OwnerEmail)
	msg.SetHeader("Subject", "Property Enquiry")
	msg.SetBody("text/plain", enquiryBody(mail))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send enquiry mail: %v", err)
	}

	return nil
}

func enquiryBody(mail service.EnquiryMail) string {
	return fmt.Sprintf(`Hello,

You have received an enquiry for your property listed as %s.

Enquirer details:
Name: %s
Email: %s

Best regards,
Your Website`, mail.PropertyID, mail.SenderName, mail.SenderEmail)
}
