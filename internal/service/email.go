package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, email, name, listingTitle string, scheduledAt time.Time, coveredAmount, gapPayment decimal.Decimal) error {
	subject := fmt.Sprintf("Booking confirmed: %s", listingTitle)
	plainText := fmt.Sprintf(
		"Hi %s,\n\nYour booking for %s on %s is confirmed.\n\nNDIS covered: $%s\nGap payment: $%s\n\nA reimbursement claim has been lodged on your behalf.\n\nThe Carebook Team",
		name, listingTitle, scheduledAt.Format("Mon 2 Jan 2006 3:04 PM"), coveredAmount.StringFixed(2), gapPayment.StringFixed(2),
	)
	return s.send(email, name, subject, plainText)
}

func (s *emailService) SendBookingReminder(ctx context.Context, email, name, listingTitle string, scheduledAt time.Time) error {
	subject := fmt.Sprintf("Reminder: %s tomorrow", listingTitle)
	plainText := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder that your booking for %s is scheduled for %s.\n\nThe Carebook Team",
		name, listingTitle, scheduledAt.Format("Mon 2 Jan 2006 3:04 PM"),
	)
	return s.send(email, name, subject, plainText)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
