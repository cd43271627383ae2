package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"scanpoints/internal/domain"
)

const (
	receiptCodeAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	receiptCodeLength   = 10
)

type attendanceService struct {
	catalog      domain.EventCatalog
	ledger       domain.AttendeeLedger
	leaderboard  domain.LeaderboardService
	emailService domain.EmailService
	logger       *slog.Logger
	now          func() time.Time
	locks        *keyedMutex
}

// NewAttendanceService creates the AttendanceService that records self-registered attendance.
// leaderboard and emailService may be nil.
func NewAttendanceService(
	catalog domain.EventCatalog,
	ledger domain.AttendeeLedger,
	leaderboard domain.LeaderboardService,
	emailService domain.EmailService,
	logger *slog.Logger,
	now func() time.Time,
) domain.AttendanceService {
	if now == nil {
		now = time.Now
	}
	return &attendanceService{
		catalog:      catalog,
		ledger:       ledger,
		leaderboard:  leaderboard,
		emailService: emailService,
		logger:       logger,
		now:          now,
		locks:        newKeyedMutex(),
	}
}

func (s *attendanceService) ValidateEvent(ctx context.Context, eventID string) (*domain.EventValidation, error) {
	event, err := s.catalog.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.EventValidation{Valid: false, Reason: domain.ReasonNotFound}, nil
		}
		return nil, err
	}
	if !s.catalog.IsLive(event, s.now()) {
		return &domain.EventValidation{Valid: false, Reason: domain.ReasonExpired}, nil
	}
	return &domain.EventValidation{
		Valid:       true,
		EventTitle:  event.Title,
		Host:        event.Host,
		Description: event.Description,
		Points:      event.Points,
	}, nil
}

func (s *attendanceService) SubmitAttendance(ctx context.Context, in domain.SubmitAttendanceInput) (*domain.AttendanceResult, error) {
	event, err := s.catalog.GetByID(ctx, in.EventID)
	if err != nil {
		return nil, err
	}
	if !s.catalog.IsLive(event, s.now()) {
		return nil, domain.ErrEventExpired
	}

	id := in.Identity
	unlock := s.locks.Lock(id.Email + "\x00" + event.ID)
	defer unlock()

	attendee, err := s.ledger.FindOrCreate(ctx, id.Email, id.Name, id.Surname)
	if err != nil {
		return nil, err
	}
	if s.ledger.HasAttended(attendee, event.ID) {
		return nil, domain.ErrDuplicateAttendance
	}

	code, err := gonanoid.Generate(receiptCodeAlphabet, receiptCodeLength)
	if err != nil {
		return nil, fmt.Errorf("generate receipt code: %w", err)
	}
	entry := domain.NewAttendanceEntry(event, s.now(), in.Answers, code)

	// Identity details are refreshed on every newly attended event.
	attendee.Name = id.Name
	attendee.Surname = id.Surname

	attendee, err = s.ledger.AppendEntry(ctx, attendee, entry)
	if err != nil {
		return nil, err
	}

	// The entry is committed; a disconnecting client must not leave the old board cached.
	if s.leaderboard != nil {
		s.leaderboard.Invalidate(context.WithoutCancel(ctx))
	}
	s.sendReceipt(ctx, attendee, entry)

	return &domain.AttendanceResult{
		PointsAdded: event.Points,
		TotalPoints: attendee.TotalPoints,
		ReceiptCode: entry.ReceiptCode,
	}, nil
}

// sendReceipt is best effort; the attendance is already committed.
func (s *attendanceService) sendReceipt(ctx context.Context, attendee *domain.Attendee, entry *domain.AttendanceEntry) {
	if s.emailService == nil {
		return
	}
	data := &domain.AttendanceReceiptEmailData{
		Email:        attendee.Email,
		Name:         strings.TrimSpace(attendee.Name + " " + attendee.Surname),
		EventTitle:   entry.EventTitle,
		EventHost:    entry.EventHost,
		PointsEarned: entry.PointsEarned,
		TotalPoints:  attendee.TotalPoints,
		ReceiptCode:  entry.ReceiptCode,
	}
	if err := s.emailService.SendAttendanceReceipt(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "attendance receipt not sent", "email", attendee.Email, "event_id", entry.EventID, "err", err)
	}
}
