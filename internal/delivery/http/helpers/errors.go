package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"scanpoints/internal/domain"
)

// WriteServiceError maps a domain error to its HTTP status and error code.
// Unrecognized errors are logged and reported as a generic internal_error.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeValidation, verr.Error())
	case errors.Is(err, domain.ErrValidation):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeEventNotFound, "event not found")
	case errors.Is(err, domain.ErrEventExpired):
		WriteJSONError(w, http.StatusGone, ErrCodeEventExpired, "event is no longer accepting attendance")
	case errors.Is(err, domain.ErrDuplicateAttendance):
		WriteJSONError(w, http.StatusConflict, ErrCodeDuplicateAttendance, "attendance already recorded for this event")
	case errors.Is(err, domain.ErrUnauthorized):
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, ErrCodeForbidden, "forbidden")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
