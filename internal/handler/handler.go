// Package handler implements the HTTP surface: the check-in flow endpoints,
// admin auth, the dashboards and the page router dispatch.  Handlers stay
// thin; workflow rules live in the flow package and SQL in the repositories.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velora-hq/frontdesk/internal/flow"
	"github.com/velora-hq/frontdesk/internal/repository"
)

const timeFormat = "02 Jan 2006 15:04"

// persistError translates a persistence gateway failure into the HTTP
// response the UI branches on.  Connectivity problems become a dismissible
// 503 banner; duplicates and state conflicts get specific 409 messages;
// anything else is a generic 500 with no partial writes retained.
func persistError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrUnavailable):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "database unreachable, please try again"})
	case errors.Is(err, repository.ErrEmailExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
	case errors.Is(err, repository.ErrSlotTaken):
		return c.JSON(http.StatusConflict, echo.Map{"error": "that time slot is already booked"})
	case errors.Is(err, repository.ErrAlreadyCheckedOut):
		return c.JSON(http.StatusConflict, echo.Map{"error": "visitor already checked out"})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "operation failed"})
}

// flowError maps a flow engine failure.  Validation errors carry the field
// so the UI can highlight it inline; the session state is unchanged.
func flowError(c echo.Context, err error) error {
	var ve *flow.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Message, "field": ve.Field})
	}
	if errors.Is(err, flow.ErrWrongStep) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "submission does not match the current step"})
	}
	return persistError(c, err)
}

// Health responds 200 for load balancer probes.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
