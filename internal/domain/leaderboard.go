package domain

import (
	"context"
	"time"
)

// LeaderboardRow is one ranked attendee. Rank is 1-based.
// swagger:model LeaderboardRow
type LeaderboardRow struct {
	Rank     int       `json:"rank"`
	Attendee *Attendee `json:"attendee"`
}

// LeaderboardCache stores a computed board between ledger mutations.
// Boards are stored per generation; Invalidate moves to a new generation so a
// board computed before a mutation can never be served after it.
type LeaderboardCache interface {
	Generation(ctx context.Context) (int64, error)
	// Get returns (nil, false, nil) on a miss.
	Get(ctx context.Context, generation int64) ([]*LeaderboardRow, bool, error)
	Set(ctx context.Context, generation int64, rows []*LeaderboardRow, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// LeaderboardService ranks attendees by total points.
type LeaderboardService interface {
	Compute(ctx context.Context) ([]*LeaderboardRow, error)
	// Invalidate drops any cached board; called after every ledger mutation.
	Invalidate(ctx context.Context)
}

// Dashboard is the admin bulk view of the catalog and the ledger.
// swagger:model Dashboard
type Dashboard struct {
	Events    []*Event    `json:"events"`
	Attendees []*Attendee `json:"attendees"`
}

// AdminService exposes administrator-only operations.
type AdminService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	CreateEvent(ctx context.Context, in CreateEventInput) (*Event, error)
	ListCatalogAndLedger(ctx context.Context) (*Dashboard, error)
	Leaderboard(ctx context.Context) ([]*LeaderboardRow, error)
}
