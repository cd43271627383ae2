package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"scanpoints/internal/delivery/http/helpers"
	"scanpoints/internal/domain"
)

// LoginRequest is the request body for POST /api/admin/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

// Validate implements Validator.
func (r LoginRequest) Validate() []string {
	return helpers.ValidateStruct(r)
}

// LoginResponse is the data returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// LoginSuccessResponse is the success response envelope for POST /api/admin/login (200).
type LoginSuccessResponse struct {
	Data  LoginResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateEventRequest is the request body for POST /api/events.
// Field rules are enforced by the event catalog so every caller gets the same validation_error.
type CreateEventRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Host            string `json:"host"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (r *CreateEventRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Host = strings.TrimSpace(r.Host)
	r.Category = strings.TrimSpace(r.Category)
}

// CreateEventSuccessResponse is the success response envelope for POST /api/events (201).
type CreateEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DashboardSuccessResponse is the success response envelope for GET /api/admin/data (200).
type DashboardSuccessResponse struct {
	Data  *domain.Dashboard `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// LeaderboardSuccessResponse is the success response envelope for GET /api/admin/leaderboard (200).
type LeaderboardSuccessResponse struct {
	Data  []*domain.LeaderboardRow `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

type AdminController struct {
	Logger  *slog.Logger
	Service domain.AdminService
}

func NewAdminController(logger *slog.Logger, svc domain.AdminService) *AdminController {
	return &AdminController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Administrator login
// @Description Exchanges the configured administrator email and password for a bearer token carrying the admin role.
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Administrator credentials"
// @Success 200 {object} controllers.LoginSuccessResponse "data.token is the bearer token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/login [post]
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token})
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event. Points are frozen from the category at creation and start_time is the creation instant.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.CreateEventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [post]
func (c *AdminController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), domain.CreateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		Host:            req.Host,
		Category:        domain.Category(req.Category),
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Dashboard godoc
// @Summary Catalog and ledger dump
// @Description Returns every event (newest first) and every attendee (most points first) with their attendance logs.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.DashboardSuccessResponse "data contains events and attendees"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/data [get]
func (c *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := c.Service.ListCatalogAndLedger(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, dashboard)
}

// Leaderboard godoc
// @Summary Leaderboard
// @Description Attendees ranked by total points. Ties keep registration order.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.LeaderboardSuccessResponse "data contains ranked rows"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/leaderboard [get]
func (c *AdminController) Leaderboard(w http.ResponseWriter, r *http.Request) {
	rows, err := c.Service.Leaderboard(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rows)
}
