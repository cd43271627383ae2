package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"scanpoints/internal/domain"
)

type eventCatalog struct {
	eventRepo      domain.EventRepository
	now            func() time.Time
	contextTimeout time.Duration
}

// NewEventCatalog creates an EventCatalog backed by eventRepo. now is the clock used for start times.
func NewEventCatalog(eventRepo domain.EventRepository, now func() time.Time, timeout time.Duration) domain.EventCatalog {
	if now == nil {
		now = time.Now
	}
	return &eventCatalog{
		eventRepo:      eventRepo,
		now:            now,
		contextTimeout: timeout,
	}
}

func (s *eventCatalog) CreateEvent(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	in.Title = strings.TrimSpace(in.Title)
	in.Host = strings.TrimSpace(in.Host)
	in.Category = domain.Category(strings.TrimSpace(string(in.Category)))
	if err := domain.NewValidationError(in.Validate()); err != nil {
		return nil, err
	}

	event := domain.NewEvent(in.Title, in.Description, in.Host, in.Category, in.DurationMinutes, s.now())
	event.ID = uuid.NewString()
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventCatalog) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventCatalog) ListAll(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventCatalog) IsLive(event *domain.Event, now time.Time) bool {
	return event.IsLive(now)
}
