package domain

import (
	"context"
	"time"
)

// Category classifies an event and decides how many points it is worth.
type Category string

const (
	CategoryShortOnline Category = "short_online"
	CategoryLongOnline  Category = "long_online"
	CategoryInPerson    Category = "in_person"
)

// categoryPoints is the allocation policy. Points are copied onto the event at
// creation, so later edits here never affect existing events.
var categoryPoints = map[Category]int{
	CategoryShortOnline: 5,
	CategoryLongOnline:  10,
	CategoryInPerson:    15,
}

// PointsFor returns the points awarded for the category and whether the category is known.
func PointsFor(c Category) (int, bool) {
	p, ok := categoryPoints[c]
	return p, ok
}

// Event is a timed occasion attendees can scan into while it is live.
// swagger:model Event
type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Host            string    `json:"host"`
	Category        Category  `json:"category"`
	Points          int       `json:"points"`
	DurationMinutes int       `json:"duration_minutes"`
	StartTime       time.Time `json:"start_time"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewEvent returns a new Event. Points are derived from the category; ID is assigned by the catalog.
func NewEvent(title, description, host string, category Category, durationMinutes int, startTime time.Time) *Event {
	points, _ := PointsFor(category)
	return &Event{
		Title:           title,
		Description:     description,
		Host:            host,
		Category:        category,
		Points:          points,
		DurationMinutes: durationMinutes,
		StartTime:       startTime,
		CreatedAt:       startTime,
	}
}

// EndTime is the last instant at which the event is still live.
func (e *Event) EndTime() time.Time {
	return e.StartTime.Add(time.Duration(e.DurationMinutes) * time.Minute)
}

// IsLive reports whether attendance can be recorded at now (inclusive of the end instant).
func (e *Event) IsLive(now time.Time) bool {
	return !now.After(e.EndTime())
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// ListAll returns every event ordered by start time, newest first.
	ListAll(ctx context.Context) ([]*Event, error)
}

// CreateEventInput carries the organizer-supplied fields of a new event.
type CreateEventInput struct {
	Title           string
	Description     string
	Host            string
	Category        Category
	DurationMinutes int
}

// Validate returns the list of problems with the input; empty means valid.
func (in CreateEventInput) Validate() []string {
	var errs []string
	if in.Title == "" {
		errs = append(errs, "title is required")
	}
	if in.Host == "" {
		errs = append(errs, "host is required")
	}
	if _, ok := PointsFor(in.Category); !ok {
		errs = append(errs, "category must be one of short_online, long_online, in_person")
	}
	if in.DurationMinutes <= 0 {
		errs = append(errs, "duration_minutes must be positive")
	}
	return errs
}

// EventCatalog owns event definitions and their liveness.
type EventCatalog interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	ListAll(ctx context.Context) ([]*Event, error)
	IsLive(event *Event, now time.Time) bool
}
