package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"scanpoints/internal/delivery/http/helpers"
	"scanpoints/internal/domain"
)

// AttendRequest is the request body for POST /api/attend.
type AttendRequest struct {
	EventID string            `json:"event_id" validate:"required"`
	Name    string            `json:"name" validate:"required,max=200"`
	Surname string            `json:"surname" validate:"required,max=200"`
	Email   string            `json:"email" validate:"required,email,max=320"`
	Answers map[string]string `json:"answers,omitempty"`
}

// Normalize trims whitespace. Email case is kept: identities are case sensitive.
func (r *AttendRequest) Normalize() {
	r.EventID = strings.TrimSpace(r.EventID)
	r.Name = strings.TrimSpace(r.Name)
	r.Surname = strings.TrimSpace(r.Surname)
	r.Email = strings.TrimSpace(r.Email)
}

// Validate implements Validator.
func (r AttendRequest) Validate() []string {
	return helpers.ValidateStruct(r)
}

// AttendSuccessResponse is the success response envelope for POST /api/attend (201).
type AttendSuccessResponse struct {
	Data  *domain.AttendanceResult `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ValidateEventResponse is the response envelope for GET /api/events/{eventID}/validate.
// Data is present for every outcome; Error is set when the event cannot take attendance.
type ValidateEventResponse struct {
	Data  *domain.EventValidation `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type AttendanceController struct {
	Logger  *slog.Logger
	Service domain.AttendanceService
}

func NewAttendanceController(logger *slog.Logger, svc domain.AttendanceService) *AttendanceController {
	return &AttendanceController{
		Logger:  logger,
		Service: svc,
	}
}

// ValidateEvent godoc
// @Summary Check an event before scanning
// @Description Public pre-submission check. Returns the event summary when it is live, otherwise valid=false with a reason.
// @Tags attendance
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.ValidateEventResponse "data.valid is true"
// @Failure 404 {object} controllers.ValidateEventResponse "error.code: event_not_found"
// @Failure 410 {object} controllers.ValidateEventResponse "error.code: event_expired"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{eventID}/validate [get]
func (c *AttendanceController) ValidateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := strings.TrimSpace(r.PathValue("eventID"))
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	v, err := c.Service.ValidateEvent(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	switch {
	case v.Valid:
		helpers.WriteJSONSuccess(w, http.StatusOK, v)
	case v.Reason == domain.ReasonExpired:
		helpers.WriteJSONErrorWithData(w, http.StatusGone, helpers.ErrCodeEventExpired, "event is no longer accepting attendance", v)
	default:
		helpers.WriteJSONErrorWithData(w, http.StatusNotFound, helpers.ErrCodeEventNotFound, "event not found", v)
	}
}

// Attend godoc
// @Summary Record attendance
// @Description Self-registration after scanning an event QR code. Credits the event's points once per attendee and event.
// @Tags attendance
// @Accept json
// @Produce json
// @Param attendance body AttendRequest true "Event id, identity and optional answers"
// @Success 201 {object} controllers.AttendSuccessResponse "data contains points_added, total_points and receipt_code"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 404 {object} helpers.APIResponse "error.code: event_not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: duplicate_attendance"
// @Failure 410 {object} helpers.APIResponse "error.code: event_expired"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/attend [post]
func (c *AttendanceController) Attend(w http.ResponseWriter, r *http.Request) {
	var req AttendRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.SubmitAttendance(r.Context(), domain.SubmitAttendanceInput{
		EventID: req.EventID,
		Identity: domain.Identity{
			Name:    req.Name,
			Surname: req.Surname,
			Email:   req.Email,
		},
		Answers: req.Answers,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, result)
}
