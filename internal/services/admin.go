package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scanpoints/internal/domain"
)

type adminService struct {
	catalog     domain.EventCatalog
	ledger      domain.AttendeeLedger
	leaderboard domain.LeaderboardService
	admin       domain.AdminCredentials
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewAdminService creates the AdminService for the single configured administrator.
func NewAdminService(
	catalog domain.EventCatalog,
	ledger domain.AttendeeLedger,
	leaderboard domain.LeaderboardService,
	admin domain.AdminCredentials,
	hasher domain.PasswordHasher,
	tokenIssuer domain.TokenIssuer,
	tokenExpiry time.Duration,
) domain.AdminService {
	return &adminService{
		catalog:     catalog,
		ledger:      ledger,
		leaderboard: leaderboard,
		admin:       admin,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
	}
}

func (s *adminService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if s.admin.Email == "" || s.admin.PasswordHash == "" {
		return "", domain.ErrUnauthorized
	}
	// The hash is always compared so a wrong email costs the same as a wrong password.
	emailMatches := strings.EqualFold(email, s.admin.Email)
	passwordErr := s.hasher.Compare(s.admin.PasswordHash, s.admin.Salt, password)
	if !emailMatches || passwordErr != nil {
		return "", domain.ErrUnauthorized
	}
	token, err := s.tokenIssuer.Issue(s.admin.Email, s.admin.Email, []string{domain.RoleAdmin}, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *adminService) CreateEvent(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	return s.catalog.CreateEvent(ctx, in)
}

func (s *adminService) ListCatalogAndLedger(ctx context.Context) (*domain.Dashboard, error) {
	events, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	attendees, err := s.ledger.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Dashboard{Events: events, Attendees: attendees}, nil
}

func (s *adminService) Leaderboard(ctx context.Context) ([]*domain.LeaderboardRow, error) {
	return s.leaderboard.Compute(ctx)
}
