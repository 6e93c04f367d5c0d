package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/velora-hq/frontdesk/internal/config"
	"github.com/velora-hq/frontdesk/internal/database"
	"github.com/velora-hq/frontdesk/internal/flow"
	"github.com/velora-hq/frontdesk/internal/handler"
	"github.com/velora-hq/frontdesk/internal/queue"
	"github.com/velora-hq/frontdesk/internal/repository"
	"github.com/velora-hq/frontdesk/internal/router"
	"github.com/velora-hq/frontdesk/internal/secrets"
	"github.com/velora-hq/frontdesk/internal/session"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	cfg := config.Load()

	provider, err := secrets.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("secret store configuration missing")
	}

	ctx := context.Background()
	db, err := database.Open(ctx, provider)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	sessionTTL := time.Duration(cfg.SessionTTLMin) * time.Minute
	var store session.Store
	if rdb != nil {
		store = session.NewRedisStore(rdb, sessionTTL)
	} else {
		// Degraded mode: sessions survive only as long as this process.
		log.Warn().Msg("redis unreachable, using in-memory sessions; rate limiting disabled")
		store = session.NewMemoryStore(sessionTTL)
	}

	visitors := repository.NewVisitorRepo(db)
	admins := repository.NewAdminRepo(db)
	bookings := repository.NewBookingRepo(db)

	h := router.Handlers{
		Pages:      handler.NewPageHandler(),
		Checkin:    handler.NewCheckinHandler(flow.New(visitors)),
		Auth:       handler.NewAuthHandler(cfg, admins),
		Dashboard:  handler.NewDashboardHandler(cfg, visitors),
		Conference: handler.NewConferenceHandler(bookings),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, h, store, rdb)

	// Audit trail consumer runs for the process lifetime, reconnecting on
	// broker failures.
	go queue.StartAuditConsumer(log)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
