package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"vehicle-rental-backend/internal/logger"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	logger.Debug("email sent", "to", to, "subject", subject)
	return nil
}

func (s *sendGridEmailService) SendRentalConfirmation(ctx context.Context, toEmail, customerName, vehicleName, startDate, endDate string, totalPrice float64) error {
	subject := "Rental Confirmation"
	plainText := fmt.Sprintf("Hi %s, your rental of %s from %s to %s is confirmed. Total: %.2f.",
		customerName, vehicleName, startDate, endDate, totalPrice)
	htmlContent := fmt.Sprintf(`<p>Hi %s,</p><p>Your rental of <strong>%s</strong> from %s to %s is confirmed.</p><p>Total: <strong>%.2f</strong></p>`,
		customerName, vehicleName, startDate, endDate, totalPrice)
	return s.send(toEmail, customerName, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendReturnReceipt(ctx context.Context, toEmail, customerName, vehicleName, returnDate string, totalPrice float64) error {
	subject := "Return Receipt"
	plainText := fmt.Sprintf("Hi %s, we received %s back on %s. Final total: %.2f. Thanks for renting with us.",
		customerName, vehicleName, returnDate, totalPrice)
	htmlContent := fmt.Sprintf(`<p>Hi %s,</p><p>We received <strong>%s</strong> back on %s.</p><p>Final total: <strong>%.2f</strong></p><p>Thanks for renting with us.</p>`,
		customerName, vehicleName, returnDate, totalPrice)
	return s.send(toEmail, customerName, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendOverdueReminder(ctx context.Context, toEmail, customerName, vehicleName, endDate string) error {
	subject := "Rental Overdue Reminder"
	plainText := fmt.Sprintf("Hi %s, your rental of %s was due back on %s. Please return it or contact us to extend.",
		customerName, vehicleName, endDate)
	htmlContent := fmt.Sprintf(`<p>Hi %s,</p><p>Your rental of <strong>%s</strong> was due back on %s.</p><p>Please return it or contact us to extend.</p>`,
		customerName, vehicleName, endDate)
	return s.send(toEmail, customerName, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendFleetSummary(ctx context.Context, toEmail string, totalVehicles, activeRentals int32, activeRevenue float64) error {
	subject := "Fleet Summary"
	plainText := fmt.Sprintf("Fleet summary: %d vehicles, %d active rentals, %.2f booked revenue.",
		totalVehicles, activeRentals, activeRevenue)
	htmlContent := fmt.Sprintf(`<p>Fleet summary:</p><ul><li>%d vehicles</li><li>%d active rentals</li><li>%.2f booked revenue</li></ul>`,
		totalVehicles, activeRentals, activeRevenue)
	return s.send(toEmail, "Fleet Admin", subject, plainText, htmlContent)
}
