// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/velora-hq/frontdesk/internal/config"
	"github.com/velora-hq/frontdesk/internal/handler"
	"github.com/velora-hq/frontdesk/internal/middleware"
	"github.com/velora-hq/frontdesk/internal/session"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Pages      *handler.PageHandler
	Checkin    *handler.CheckinHandler
	Auth       *handler.AuthHandler
	Dashboard  *handler.DashboardHandler
	Conference *handler.ConferenceHandler
}

// Register mounts all application routes on the provided Echo instance.
// Every route under /v1 carries the workflow session; dashboard and
// conference routes additionally require an admin access token, and the
// credential endpoints sit behind the login rate limiter.
func Register(e *echo.Echo, cfg config.Config, h Handlers, store session.Store, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	v1.Use(middleware.WithSession(store))

	// Page router dispatch.
	v1.GET("/pages", h.Pages.Index)
	v1.GET("/pages/:page", h.Pages.Get)

	// Visitor check-in flow.
	checkin := v1.Group("/checkin")
	checkin.POST("/step1", h.Checkin.Step1)
	checkin.POST("/step2", h.Checkin.Step2)
	checkin.POST("/step3", h.Checkin.Step3)
	checkin.POST("/back", h.Checkin.Back)
	checkin.POST("/reset", h.Checkin.Reset)
	checkin.POST("/logout", h.Checkin.Logout)

	// Admin credentials.  Login and registration are rate limited.
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	admin := v1.Group("/admin")
	admin.POST("/register", h.Auth.Register, limiter)
	admin.POST("/login", h.Auth.Login, limiter)
	admin.POST("/password-reset", h.Auth.ResetPassword, limiter)
	admin.POST("/logout", h.Auth.Logout)

	// Back-office views require a valid access token.
	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))
	protected.GET("/dashboard/visitors", h.Dashboard.List)
	protected.POST("/dashboard/visitors/:id/checkout", h.Dashboard.Checkout)
	protected.GET("/conference/bookings", h.Conference.ListBookings)
	protected.POST("/conference/bookings", h.Conference.CreateBooking)
	protected.GET("/conference/dashboard", h.Conference.Dashboard)
}
