package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	mw "github.com/velora-hq/frontdesk/internal/middleware"
	"github.com/velora-hq/frontdesk/internal/model"
	"github.com/velora-hq/frontdesk/internal/queue"
	"github.com/velora-hq/frontdesk/internal/repository"
	queue_publisher "github.com/velora-hq/frontdesk/internal/service"
)

// ConferenceHandler serves room booking submissions and the conference
// dashboard.
type ConferenceHandler struct {
	Bookings *repository.BookingRepo
}

func NewConferenceHandler(b *repository.BookingRepo) *ConferenceHandler {
	return &ConferenceHandler{Bookings: b}
}

type bookingReq struct {
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	Purpose    string    `json:"purpose"`
	Department string    `json:"department"`
}

// CreateBooking records a reservation for the room.  The booked-by identity
// is the logged-in admin, not client input.  Start must precede end and the
// slot must be free.
func (h *ConferenceHandler) CreateBooking(c echo.Context) error {
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_at/end_at required"})
	}
	if !req.StartAt.Before(req.EndAt) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start must be before end"})
	}

	bookedBy := mw.SessionFrom(c).AdminName
	if bookedBy == "" {
		if name, ok := c.Get("admin_name").(string); ok {
			bookedBy = name
		}
	}

	booking := model.ConferenceBooking{
		StartAt:    req.StartAt.UTC(),
		EndAt:      req.EndAt.UTC(),
		Purpose:    strings.TrimSpace(req.Purpose),
		BookedBy:   bookedBy,
		Department: strings.TrimSpace(req.Department),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Bookings.Create(ctx, &booking)
	if err != nil {
		return persistError(c, err)
	}

	_ = queue_publisher.PublishAudit(ctx, queue.AuditEvent{
		Type:       queue.TypeBookingCreated,
		BookingID:  id,
		BookedBy:   booking.BookedBy,
		Department: booking.Department,
		StartsAt:   booking.StartAt.Format(time.RFC3339),
		EndsAt:     booking.EndAt.Format(time.RFC3339),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{"booking": booking})
}

// ListBookings returns every booking, newest start first.
func (h *ConferenceHandler) ListBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.List(ctx)
	if err != nil {
		return persistError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings, "total": len(bookings)})
}

// Dashboard returns the bookings together with the aggregate figures the
// conference screen shows.
func (h *ConferenceHandler) Dashboard(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.List(ctx)
	if err != nil {
		return persistError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"bookings": bookings,
		"stats":    ComputeStats(bookings),
	})
}

// ConferenceStats aggregates the full booking list in memory for the
// dashboard header.
type ConferenceStats struct {
	Total          int            `json:"total"`
	ByDepartment   map[string]int `json:"by_department"`
	TopBooker      string         `json:"top_booker"`
	TopBookerCount int            `json:"top_booker_count"`
}

// ComputeStats groups bookings by department and finds the most active
// booker.  Ties on the booking count resolve to the lexicographically
// smallest identity so the result does not depend on map iteration order.
func ComputeStats(bookings []model.ConferenceBooking) ConferenceStats {
	stats := ConferenceStats{
		Total:        len(bookings),
		ByDepartment: make(map[string]int),
	}
	byBooker := make(map[string]int)
	for _, b := range bookings {
		if b.Department != "" {
			stats.ByDepartment[b.Department]++
		}
		if b.BookedBy != "" {
			byBooker[b.BookedBy]++
		}
	}
	for who, n := range byBooker {
		switch {
		case n > stats.TopBookerCount:
			stats.TopBooker, stats.TopBookerCount = who, n
		case n == stats.TopBookerCount && who < stats.TopBooker:
			stats.TopBooker = who
		}
	}
	return stats
}
