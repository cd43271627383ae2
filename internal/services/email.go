package services

import (
	"context"
	"fmt"

	"scanpoints/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendAttendanceReceipt sends the "attendance_receipt" template to the attendee.
func (s *emailService) SendAttendanceReceipt(ctx context.Context, data *domain.AttendanceReceiptEmailData) error {
	if data == nil {
		return fmt.Errorf("attendance receipt data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("attendance_receipt", data)
	if err != nil {
		return fmt.Errorf("failed to render attendance_receipt template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send attendance receipt: %w", err)
	}
	return nil
}
