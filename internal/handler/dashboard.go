package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velora-hq/frontdesk/internal/config"
	"github.com/velora-hq/frontdesk/internal/model"
	"github.com/velora-hq/frontdesk/internal/queue"
	"github.com/velora-hq/frontdesk/internal/repository"
	queue_publisher "github.com/velora-hq/frontdesk/internal/service"
)

// DashboardHandler serves the visitor activity list and the checkout
// action.
type DashboardHandler struct {
	Cfg      config.Config
	Visitors *repository.VisitorRepo
}

func NewDashboardHandler(cfg config.Config, v *repository.VisitorRepo) *DashboardHandler {
	return &DashboardHandler{Cfg: cfg, Visitors: v}
}

// VisitorRow is one dashboard line with display-ready columns: formatted
// times, yes/- belongings markers and the derived status label.
type VisitorRow struct {
	ID           uint64 `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Company      string `json:"company"`
	Host         string `json:"host"`
	VisitType    string `json:"visit_type"`
	Purpose      string `json:"purpose"`
	Laptop       string `json:"laptop"`
	Documents    string `json:"documents"`
	PowerBank    string `json:"power_bank"`
	Other        string `json:"other"`
	RegisteredAt string `json:"registered_at"`
	CheckoutAt   string `json:"checkout_at"`
	Status       string `json:"status"`
}

func mark(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

// DisplayRow maps a visitor record onto its dashboard representation.
func DisplayRow(v model.Visitor) VisitorRow {
	row := VisitorRow{
		ID:           v.ID,
		FullName:     v.FullName,
		Email:        v.Email,
		Phone:        v.Phone,
		Company:      v.Company,
		Host:         v.Host,
		VisitType:    string(v.VisitType),
		Purpose:      v.Purpose,
		Laptop:       mark(v.Belongings.Laptop),
		Documents:    mark(v.Belongings.Documents),
		PowerBank:    mark(v.Belongings.PowerBank),
		Other:        mark(v.Belongings.Other),
		RegisteredAt: v.RegisteredAt.UTC().Format(timeFormat),
		CheckoutAt:   "-",
		Status:       v.Status(),
	}
	if v.CheckoutAt != nil {
		row.CheckoutAt = v.CheckoutAt.UTC().Format(timeFormat)
	}
	return row
}

// List returns the recent-activity rows, newest first.  The trailing window
// defaults to the configured value (48h unless overridden) and may be
// narrowed with ?hours=.
func (h *DashboardHandler) List(c echo.Context) error {
	window := time.Duration(h.Cfg.RecentWindowH) * time.Hour
	if raw := c.QueryParam("hours"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			window = time.Duration(n) * time.Hour
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	visitors, err := h.Visitors.ListRecent(ctx, window)
	if err != nil {
		return persistError(c, err)
	}

	rows := make([]VisitorRow, 0, len(visitors))
	checkedIn := 0
	for _, v := range visitors {
		if v.CheckoutAt == nil {
			checkedIn++
		}
		rows = append(rows, DisplayRow(v))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"visitors":   rows,
		"total":      len(rows),
		"checked_in": checkedIn,
	})
}

// Checkout sets the checkout timestamp of a checked-in visitor and returns
// the refreshed row.  A repeat checkout is rejected with a 409.
func (h *DashboardHandler) Checkout(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid visitor id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Visitors.Checkout(ctx, id, time.Now().UTC()); err != nil {
		return persistError(c, err)
	}

	v, err := h.Visitors.GetByID(ctx, id)
	if err != nil {
		return persistError(c, err)
	}

	_ = queue_publisher.PublishAudit(ctx, queue.AuditEvent{
		Type:       queue.TypeVisitorCheckedOut,
		VisitorID:  v.ID,
		FullName:   v.FullName,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"visitor": DisplayRow(v)})
}
