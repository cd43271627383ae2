package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"scanpoints/internal/delivery/http/controllers"
	"scanpoints/internal/delivery/http/middleware"
	"scanpoints/internal/domain"
)

// RouterDeps holds everything NewRouter wires into the mux.
type RouterDeps struct {
	Logger         *slog.Logger
	Admin          *controllers.AdminController
	Attendance     *controllers.AttendanceController
	Health         *controllers.HealthController
	Verifier       domain.TokenVerifier
	AllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes and wraps it
// with CORS and request logging.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(deps.Verifier)

	// Public
	mux.HandleFunc("POST /api/admin/login", deps.Admin.Login)
	mux.HandleFunc("GET /api/events/{eventID}/validate", deps.Attendance.ValidateEvent)
	mux.HandleFunc("POST /api/attend", deps.Attendance.Attend)
	mux.HandleFunc("GET /healthz", deps.Health.Healthz)

	// Admin
	mux.HandleFunc("POST /api/events", admin(deps.Admin.CreateEvent))
	mux.HandleFunc("GET /api/admin/data", admin(deps.Admin.Dashboard))
	mux.HandleFunc("GET /api/admin/leaderboard", admin(deps.Admin.Leaderboard))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.LoggingMiddleware(deps.Logger, middleware.CORS(deps.AllowedOrigins)(mux))
}
