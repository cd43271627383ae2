package domain

import (
	"context"
	"time"
)

// AttendanceEntry is one scan recorded in an attendee's ledger. Event facts are
// snapshotted at submission time so the history stands on its own.
// swagger:model AttendanceEntry
type AttendanceEntry struct {
	ID           int64             `json:"id"`
	EventID      string            `json:"event_id"`
	EventTitle   string            `json:"event_title"`
	EventHost    string            `json:"event_host"`
	DateScanned  time.Time         `json:"date_scanned"`
	PointsEarned int               `json:"points_earned"`
	Answers      map[string]string `json:"answers,omitempty"`
	ReceiptCode  string            `json:"receipt_code"`
}

// NewAttendanceEntry snapshots the event into a new entry scanned at now.
func NewAttendanceEntry(event *Event, now time.Time, answers map[string]string, receiptCode string) *AttendanceEntry {
	return &AttendanceEntry{
		EventID:      event.ID,
		EventTitle:   event.Title,
		EventHost:    event.Host,
		DateScanned:  now,
		PointsEarned: event.Points,
		Answers:      answers,
		ReceiptCode:  receiptCode,
	}
}

// Attendee is identified by email (case-sensitive) and owns an append-only attendance log.
// swagger:model Attendee
type Attendee struct {
	ID            int64             `json:"id"`
	Email         string            `json:"email"`
	Name          string            `json:"name"`
	Surname       string            `json:"surname"`
	TotalPoints   int               `json:"total_points"`
	AttendanceLog []AttendanceEntry `json:"attendance_log"`
	CreatedAt     time.Time         `json:"created_at"`
}

// NewAttendee returns an attendee with no points and an empty log. ID is set by the repository when first persisted.
func NewAttendee(email, name, surname string, createdAt time.Time) *Attendee {
	return &Attendee{
		Email:         email,
		Name:          name,
		Surname:       surname,
		AttendanceLog: []AttendanceEntry{},
		CreatedAt:     createdAt,
	}
}

// HasAttended reports whether the log already holds an entry for eventID.
func (a *Attendee) HasAttended(eventID string) bool {
	for _, e := range a.AttendanceLog {
		if e.EventID == eventID {
			return true
		}
	}
	return false
}

// AttendeeRepository defines storage for attendees and their ledgers.
type AttendeeRepository interface {
	// GetByEmail returns the attendee with its full log, or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*Attendee, error)
	// Append atomically persists the attendee (creating it if needed and
	// refreshing name/surname), inserts entry and credits its points. It
	// returns ErrDuplicateAttendance, leaving storage untouched, when an entry
	// for (attendee.Email, entry.EventID) already exists. On success attendee
	// reflects the stored totals and log.
	Append(ctx context.Context, attendee *Attendee, entry *AttendanceEntry) error
	// ListAll returns every attendee ordered by total points descending, then creation order.
	ListAll(ctx context.Context) ([]*Attendee, error)
}

// AttendeeLedger owns the per-attendee ledgers.
type AttendeeLedger interface {
	// FindOrCreate returns the stored attendee or a new, not yet persisted one.
	FindOrCreate(ctx context.Context, email, name, surname string) (*Attendee, error)
	HasAttended(attendee *Attendee, eventID string) bool
	AppendEntry(ctx context.Context, attendee *Attendee, entry *AttendanceEntry) (*Attendee, error)
	ListAll(ctx context.Context) ([]*Attendee, error)
}

// Identity is what an attendee reports about themselves when scanning.
type Identity struct {
	Name    string
	Surname string
	Email   string
}

// SubmitAttendanceInput is the payload of a self-registration.
type SubmitAttendanceInput struct {
	EventID  string
	Identity Identity
	Answers  map[string]string
}

// AttendanceResult is returned after a successful submission.
// swagger:model AttendanceResult
type AttendanceResult struct {
	PointsAdded int    `json:"points_added"`
	TotalPoints int    `json:"total_points"`
	ReceiptCode string `json:"receipt_code"`
}

// Reasons an event fails validation.
const (
	ReasonNotFound = "not_found"
	ReasonExpired  = "expired"
)

// EventValidation is the pre-submission view of an event.
// swagger:model EventValidation
type EventValidation struct {
	Valid       bool   `json:"valid"`
	EventTitle  string `json:"event_title,omitempty"`
	Host        string `json:"host,omitempty"`
	Description string `json:"description,omitempty"`
	Points      int    `json:"points,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// AttendanceService is the attendee-facing entry point.
type AttendanceService interface {
	ValidateEvent(ctx context.Context, eventID string) (*EventValidation, error)
	SubmitAttendance(ctx context.Context, in SubmitAttendanceInput) (*AttendanceResult, error)
}
