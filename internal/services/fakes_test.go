package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"scanpoints/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.Event
	order   []string
	err     error // if set, every call returns this error
	created int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event)}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	cp := *e
	f.byID[e.ID] = &cp
	f.order = append(f.order, e.ID)
	f.created++
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if e, ok := f.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) ListAll(ctx context.Context) ([]*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Event
	for i := len(f.order) - 1; i >= 0; i-- {
		cp := *f.byID[f.order[i]]
		out = append(out, &cp)
	}
	return out, nil
}

// fakeAttendeeRepo is an in-memory AttendeeRepository for tests. With
// skipConflictCheck set, Append behaves like a plain insert so that only the
// service-level serialization prevents duplicates.
type fakeAttendeeRepo struct {
	mu                sync.Mutex
	byEmail           map[string]*domain.Attendee
	order             []string
	nextID            int64
	getErr            error
	appendErr         error
	listErr           error
	skipConflictCheck bool
	appendDelay       time.Duration
	appends           int
	afterAppend       func()
}

func newFakeAttendeeRepo() *fakeAttendeeRepo {
	return &fakeAttendeeRepo{byEmail: make(map[string]*domain.Attendee), nextID: 1}
}

func copyAttendee(a *domain.Attendee) *domain.Attendee {
	cp := *a
	cp.AttendanceLog = append([]domain.AttendanceEntry{}, a.AttendanceLog...)
	return &cp
}

func (f *fakeAttendeeRepo) GetByEmail(ctx context.Context, email string) (*domain.Attendee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	a, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyAttendee(a), nil
}

func (f *fakeAttendeeRepo) Append(ctx context.Context, attendee *domain.Attendee, entry *domain.AttendanceEntry) error {
	if f.appendDelay > 0 {
		time.Sleep(f.appendDelay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	stored, ok := f.byEmail[attendee.Email]
	if ok && !f.skipConflictCheck && stored.HasAttended(entry.EventID) {
		return domain.ErrDuplicateAttendance
	}
	if !ok {
		stored = copyAttendee(attendee)
		stored.ID = f.nextID
		stored.TotalPoints = 0
		stored.AttendanceLog = []domain.AttendanceEntry{}
		f.nextID++
		f.byEmail[attendee.Email] = stored
		f.order = append(f.order, attendee.Email)
	}
	f.appends++
	entry.ID = int64(f.appends)
	stored.Name = attendee.Name
	stored.Surname = attendee.Surname
	stored.TotalPoints += entry.PointsEarned
	stored.AttendanceLog = append(stored.AttendanceLog, *entry)
	*attendee = *copyAttendee(stored)
	if f.afterAppend != nil {
		f.afterAppend()
	}
	return nil
}

func (f *fakeAttendeeRepo) ListAll(ctx context.Context) ([]*domain.Attendee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Attendee, 0, len(f.order))
	for _, email := range f.order {
		out = append(out, copyAttendee(f.byEmail[email]))
	}
	return out, nil
}

// fakeCache is an in-memory LeaderboardCache for tests.
type fakeCache struct {
	mu          sync.Mutex
	generation  int64
	boards      map[int64][]*domain.LeaderboardRow
	getErr      error
	genErr      error
	sets        int
	invalidated int
}

func (c *fakeCache) Generation(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation, c.genErr
}

func (c *fakeCache) Get(ctx context.Context, generation int64) ([]*domain.LeaderboardRow, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	rows, ok := c.boards[generation]
	return rows, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, generation int64, rows []*domain.LeaderboardRow, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.boards == nil {
		c.boards = map[int64][]*domain.LeaderboardRow{}
	}
	c.boards[generation] = rows
	c.sets++
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	c.generation++
	c.invalidated++
	return nil
}

// fakeEmailService records receipts.
type fakeEmailService struct {
	mu   sync.Mutex
	sent []*domain.AttendanceReceiptEmailData
	err  error
}

func (f *fakeEmailService) SendAttendanceReceipt(ctx context.Context, data *domain.AttendanceReceiptEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) { return salt + ":" + password, nil }

func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeIssuer struct {
	subject string
	roles   []string
	err     error
}

func (f *fakeIssuer) Issue(subject, email string, roles []string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.subject, f.roles = subject, roles
	return "token-for-" + subject, nil
}
