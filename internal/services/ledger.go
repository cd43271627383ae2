package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scanpoints/internal/domain"
)

type attendeeLedger struct {
	attendeeRepo   domain.AttendeeRepository
	now            func() time.Time
	contextTimeout time.Duration
}

// NewAttendeeLedger creates an AttendeeLedger backed by attendeeRepo.
func NewAttendeeLedger(attendeeRepo domain.AttendeeRepository, now func() time.Time, timeout time.Duration) domain.AttendeeLedger {
	if now == nil {
		now = time.Now
	}
	return &attendeeLedger{
		attendeeRepo:   attendeeRepo,
		now:            now,
		contextTimeout: timeout,
	}
}

// FindOrCreate looks the attendee up by exact email. A missing attendee is
// returned unsaved; it is persisted by the first successful AppendEntry.
func (s *attendeeLedger) FindOrCreate(ctx context.Context, email, name, surname string) (*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	attendee, err := s.attendeeRepo.GetByEmail(ctx, email)
	if err == nil {
		return attendee, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get attendee: %w", err)
	}
	return domain.NewAttendee(email, name, surname, s.now()), nil
}

func (s *attendeeLedger) HasAttended(attendee *domain.Attendee, eventID string) bool {
	return attendee.HasAttended(eventID)
}

func (s *attendeeLedger) AppendEntry(ctx context.Context, attendee *domain.Attendee, entry *domain.AttendanceEntry) (*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if attendee.HasAttended(entry.EventID) {
		return nil, domain.ErrDuplicateAttendance
	}
	if err := s.attendeeRepo.Append(ctx, attendee, entry); err != nil {
		if errors.Is(err, domain.ErrDuplicateAttendance) {
			return nil, domain.ErrDuplicateAttendance
		}
		return nil, fmt.Errorf("append attendance entry: %w", err)
	}
	return attendee, nil
}

func (s *attendeeLedger) ListAll(ctx context.Context) ([]*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	attendees, err := s.attendeeRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	if attendees == nil {
		attendees = []*domain.Attendee{}
	}
	return attendees, nil
}
