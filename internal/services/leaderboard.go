package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"scanpoints/internal/domain"
)

type leaderboardService struct {
	ledger   domain.AttendeeLedger
	cache    domain.LeaderboardCache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewLeaderboardService creates a LeaderboardService over ledger. cache may be nil to always recompute.
func NewLeaderboardService(ledger domain.AttendeeLedger, cache domain.LeaderboardCache, cacheTTL time.Duration, logger *slog.Logger) domain.LeaderboardService {
	return &leaderboardService{
		ledger:   ledger,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (s *leaderboardService) Compute(ctx context.Context) ([]*domain.LeaderboardRow, error) {
	cacheable := false
	var generation int64
	if s.cache != nil {
		gen, err := s.cache.Generation(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "leaderboard cache generation read failed", "err", err)
		} else {
			generation, cacheable = gen, true
			rows, ok, err := s.cache.Get(ctx, generation)
			if err != nil {
				s.logger.WarnContext(ctx, "leaderboard cache read failed", "err", err)
			} else if ok {
				return rows, nil
			}
		}
	}

	attendees, err := s.ledger.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := rank(attendees)

	// Stored under the generation read before ListAll. If a mutation bumped it
	// meanwhile, this board lands on a retired key and is never served.
	if cacheable {
		if err := s.cache.Set(ctx, generation, rows, s.cacheTTL); err != nil {
			s.logger.WarnContext(ctx, "leaderboard cache write failed", "err", err)
		}
	}
	return rows, nil
}

func (s *leaderboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "leaderboard cache invalidation failed", "err", err)
	}
}

// rank orders attendees by total points descending. Ties keep the ledger's
// order, which is creation order.
func rank(attendees []*domain.Attendee) []*domain.LeaderboardRow {
	sorted := make([]*domain.Attendee, len(attendees))
	copy(sorted, attendees)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalPoints > sorted[j].TotalPoints
	})
	rows := make([]*domain.LeaderboardRow, 0, len(sorted))
	for i, a := range sorted {
		rows = append(rows, &domain.LeaderboardRow{Rank: i + 1, Attendee: a})
	}
	return rows
}
