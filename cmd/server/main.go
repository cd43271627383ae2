package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"scanpoints/config"
	_ "scanpoints/docs"
	"scanpoints/internal/adapters/auth"
	"scanpoints/internal/adapters/cache"
	"scanpoints/internal/adapters/email"
	deliveryhttp "scanpoints/internal/delivery/http"
	"scanpoints/internal/delivery/http/controllers"
	"scanpoints/internal/domain"
	"scanpoints/internal/repository/postgres"
	"scanpoints/internal/services"
)

// @title Scan Points API
// @version 1.0
// @description QR-code event attendance and points ledger.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(startupCtx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	if err := postgres.EnsureSchema(startupCtx, db); err != nil {
		return err
	}

	var leaderboardCache domain.LeaderboardCache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		if err := rdb.Ping(startupCtx).Err(); err != nil {
			logger.Warn("redis unavailable, leaderboard cache will fall back to recomputation", "err", err)
		}
		leaderboardCache = cache.NewRedisLeaderboardCache(rdb, cache.DefaultLeaderboardKey)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}

	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		logger.Warn("administrator credentials not configured, admin login is disabled")
	}

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	attendeeRepo := postgres.NewAttendeeRepository(db)

	// Services
	catalog := services.NewEventCatalog(eventRepo, time.Now, cfg.RequestTimeout)
	ledger := services.NewAttendeeLedger(attendeeRepo, time.Now, cfg.RequestTimeout)
	leaderboard := services.NewLeaderboardService(ledger, leaderboardCache, cfg.LeaderboardCacheTTL, logger)
	emailService := services.NewEmailService(mailer, renderer)
	attendance := services.NewAttendanceService(catalog, ledger, leaderboard, emailService, logger, time.Now)
	admin := services.NewAdminService(
		catalog,
		ledger,
		leaderboard,
		domain.AdminCredentials{
			Email:        cfg.AdminEmail,
			PasswordHash: cfg.AdminPasswordHash,
			Salt:         cfg.AdminPasswordSalt,
		},
		auth.NewBcryptHasher(0),
		auth.NewJWTIssuer(cfg.JWTSecret),
		cfg.JWTExpiry,
	)

	handler := deliveryhttp.NewRouter(deliveryhttp.RouterDeps{
		Logger:         logger,
		Admin:          controllers.NewAdminController(logger, admin),
		Attendance:     controllers.NewAttendanceController(logger, attendance),
		Health:         controllers.NewHealthController(logger, db),
		Verifier:       auth.NewJWTVerifier(cfg.JWTSecret),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
