package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"safawala-crm-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendOverdueReturnReminder(ctx context.Context, email, customerName, bookingNumber string, returnDate time.Time) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Return overdue for booking %s", bookingNumber))

	body := fmt.Sprintf("Hello %s,\n\nThe items for booking %s were due back on %s and have not been returned yet.\n\nPlease arrange the return as soon as possible to avoid additional charges.\n\nBest regards,\nThe Safawala Team",
		customerName, bookingNumber, returnDate.Format("02 Jan 2006"))
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send overdue reminder: %w", err)
	}
	return nil
}

func (s *emailService) SendLowStockAlert(ctx context.Context, email string, products []domain.Product) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Low stock alert: %d products below reorder level", len(products)))

	var b strings.Builder
	b.WriteString("The following products are at or below their reorder level:\n\n")
	for _, p := range products {
		fmt.Fprintf(&b, "  %s (%s): %d available, reorder at %d\n", p.Name, p.Code, p.Stock.Available, p.ReorderLevel)
	}
	b.WriteString("\nBest regards,\nThe Safawala Team")
	m.SetBody("text/plain", b.String())

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send low stock alert: %w", err)
	}
	return nil
}
