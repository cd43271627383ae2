package controllers

import (
	"context"
	"io"
	"log/slog"

	"scanpoints/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeAdminService implements domain.AdminService for handler tests.
type fakeAdminService struct {
	loginToken        string
	loginErr          error
	lastLoginEmail    string
	lastLoginPassword string

	createEventResult *domain.Event
	createEventErr    error
	lastCreateInput   domain.CreateEventInput

	dashboard    *domain.Dashboard
	dashboardErr error

	leaderboard    []*domain.LeaderboardRow
	leaderboardErr error
}

func (f *fakeAdminService) Login(_ context.Context, email, password string) (string, error) {
	f.lastLoginEmail = email
	f.lastLoginPassword = password
	return f.loginToken, f.loginErr
}

func (f *fakeAdminService) CreateEvent(_ context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	f.lastCreateInput = in
	return f.createEventResult, f.createEventErr
}

func (f *fakeAdminService) ListCatalogAndLedger(_ context.Context) (*domain.Dashboard, error) {
	return f.dashboard, f.dashboardErr
}

func (f *fakeAdminService) Leaderboard(_ context.Context) ([]*domain.LeaderboardRow, error) {
	return f.leaderboard, f.leaderboardErr
}

// fakeAttendanceService implements domain.AttendanceService for handler tests.
type fakeAttendanceService struct {
	validation      *domain.EventValidation
	validateErr     error
	lastValidateID  string
	submitResult    *domain.AttendanceResult
	submitErr       error
	lastSubmitInput domain.SubmitAttendanceInput
	submitCalled    bool
}

func (f *fakeAttendanceService) ValidateEvent(_ context.Context, eventID string) (*domain.EventValidation, error) {
	f.lastValidateID = eventID
	return f.validation, f.validateErr
}

func (f *fakeAttendanceService) SubmitAttendance(_ context.Context, in domain.SubmitAttendanceInput) (*domain.AttendanceResult, error) {
	f.submitCalled = true
	f.lastSubmitInput = in
	return f.submitResult, f.submitErr
}

type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(_ context.Context) error { return f.err }
