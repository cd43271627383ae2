package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scanpoints/internal/domain"
)

type attendeeRepository struct {
	DB *sql.DB
}

// NewAttendeeRepository returns an AttendeeRepository whose Append relies on the
// (attendee_email, event_id) unique constraint for at-most-once attendance.
func NewAttendeeRepository(db *sql.DB) domain.AttendeeRepository {
	return &attendeeRepository{DB: db}
}

const entryColumns = `id, attendee_email, event_id, event_title, event_host, date_scanned, points_earned, answers, receipt_code`

func scanEntry(s rowScanner) (string, *domain.AttendanceEntry, error) {
	var email string
	var answers []byte
	e := &domain.AttendanceEntry{}
	if err := s.Scan(&e.ID, &email, &e.EventID, &e.EventTitle, &e.EventHost, &e.DateScanned, &e.PointsEarned, &answers, &e.ReceiptCode); err != nil {
		return "", nil, err
	}
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &e.Answers); err != nil {
			return "", nil, fmt.Errorf("decode answers: %w", err)
		}
		if len(e.Answers) == 0 {
			e.Answers = nil
		}
	}
	return email, e, nil
}

func (r *attendeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Attendee, error) {
	query := `
		SELECT id, email, name, surname, total_points, created_at
		FROM attendees
		WHERE email = $1
	`
	a := &domain.Attendee{}
	err := r.DB.QueryRowContext(ctx, query, email).
		Scan(&a.ID, &a.Email, &a.Name, &a.Surname, &a.TotalPoints, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	entriesQuery := `
		SELECT ` + entryColumns + `
		FROM attendance_entries
		WHERE attendee_email = $1
		ORDER BY id ASC
	`
	rows, err := r.DB.QueryContext(ctx, entriesQuery, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	a.AttendanceLog = []domain.AttendanceEntry{}
	for rows.Next() {
		_, e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		a.AttendanceLog = append(a.AttendanceLog, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *attendeeRepository) Append(ctx context.Context, attendee *domain.Attendee, entry *domain.AttendanceEntry) error {
	answers := entry.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	upsertAttendee := `
		INSERT INTO attendees (email, name, surname, total_points, created_at)
		VALUES ($1, $2, $3, 0, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, surname = EXCLUDED.surname
		RETURNING id, created_at
	`
	var id int64
	var createdAt time.Time
	err = tx.QueryRowContext(ctx, upsertAttendee, attendee.Email, attendee.Name, attendee.Surname, attendee.CreatedAt).
		Scan(&id, &createdAt)
	if err != nil {
		return err
	}

	insertEntry := `
		INSERT INTO attendance_entries (attendee_email, event_id, event_title, event_host, date_scanned, points_earned, answers, receipt_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (attendee_email, event_id) DO NOTHING
		RETURNING id
	`
	var entryID int64
	err = tx.QueryRowContext(ctx, insertEntry,
		attendee.Email, entry.EventID, entry.EventTitle, entry.EventHost, entry.DateScanned, entry.PointsEarned, answersJSON, entry.ReceiptCode).
		Scan(&entryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrDuplicateAttendance
		}
		return err
	}

	credit := `
		UPDATE attendees SET total_points = total_points + $1
		WHERE email = $2
		RETURNING total_points
	`
	var total int
	if err := tx.QueryRowContext(ctx, credit, entry.PointsEarned, attendee.Email).Scan(&total); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	entry.ID = entryID
	attendee.ID = id
	attendee.CreatedAt = createdAt
	attendee.TotalPoints = total
	attendee.AttendanceLog = append(attendee.AttendanceLog, *entry)
	return nil
}

func (r *attendeeRepository) ListAll(ctx context.Context) ([]*domain.Attendee, error) {
	query := `
		SELECT id, email, name, surname, total_points, created_at
		FROM attendees
		ORDER BY total_points DESC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := make([]*domain.Attendee, 0)
	byEmail := make(map[string]*domain.Attendee)
	for rows.Next() {
		a := &domain.Attendee{AttendanceLog: []domain.AttendanceEntry{}}
		if err := rows.Scan(&a.ID, &a.Email, &a.Name, &a.Surname, &a.TotalPoints, &a.CreatedAt); err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
		byEmail[a.Email] = a
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(attendees) == 0 {
		return attendees, nil
	}

	entriesQuery := `
		SELECT ` + entryColumns + `
		FROM attendance_entries
		ORDER BY id ASC
	`
	entryRows, err := r.DB.QueryContext(ctx, entriesQuery)
	if err != nil {
		return nil, err
	}
	defer entryRows.Close()
	for entryRows.Next() {
		email, e, err := scanEntry(entryRows)
		if err != nil {
			return nil, err
		}
		if a, ok := byEmail[email]; ok {
			a.AttendanceLog = append(a.AttendanceLog, *e)
		}
	}
	return attendees, entryRows.Err()
}
