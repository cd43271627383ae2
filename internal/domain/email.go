package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// AttendanceReceiptEmailData holds data for the attendance receipt email.
type AttendanceReceiptEmailData struct {
	Email        string
	Name         string
	EventTitle   string
	EventHost    string
	PointsEarned int
	TotalPoints  int
	ReceiptCode  string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendAttendanceReceipt(ctx context.Context, data *AttendanceReceiptEmailData) error
}
