package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velora-hq/frontdesk/internal/flow"
	mw "github.com/velora-hq/frontdesk/internal/middleware"
	"github.com/velora-hq/frontdesk/internal/model"
	"github.com/velora-hq/frontdesk/internal/queue"
	queue_publisher "github.com/velora-hq/frontdesk/internal/service"
)

// CheckinHandler exposes the multi-step check-in flow over HTTP.  All
// workflow state lives in the caller's session; the handler binds inputs,
// runs the engine transition and reports the resulting step.
type CheckinHandler struct {
	Engine *flow.Engine
}

func NewCheckinHandler(e *flow.Engine) *CheckinHandler { return &CheckinHandler{Engine: e} }

func stepResp(c echo.Context, step int, extra echo.Map) error {
	resp := echo.Map{"step": step}
	for k, v := range extra {
		resp[k] = v
	}
	return c.JSON(http.StatusOK, resp)
}

// Step1 submits the primary details and advances to step 2.
func (h *CheckinHandler) Step1(c echo.Context) error {
	var in flow.Step1Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	sess := mw.SessionFrom(c)
	if err := h.Engine.SubmitStep1(sess, in); err != nil {
		return flowError(c, err)
	}
	return stepResp(c, sess.Step, nil)
}

// Step2 submits the organisation details and advances to step 3.
func (h *CheckinHandler) Step2(c echo.Context) error {
	var in flow.Step2Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	sess := mw.SessionFrom(c)
	if err := h.Engine.SubmitStep2(sess, in); err != nil {
		return flowError(c, err)
	}
	return stepResp(c, sess.Step, nil)
}

// Step3 submits the signature and commits the check-in.  On success the
// response carries the new visitor ID and the name for the welcome message.
func (h *CheckinHandler) Step3(c echo.Context) error {
	var in flow.Step3Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	sess := mw.SessionFrom(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Engine.SubmitStep3(ctx, sess, in)
	if err != nil {
		return flowError(c, err)
	}

	// Best effort: a broker outage must not undo a committed check-in.
	_ = queue_publisher.PublishAudit(ctx, queue.AuditEvent{
		Type:       queue.TypeVisitorCheckedIn,
		VisitorID:  id,
		FullName:   sess.Draft.FullName,
		Host:       sess.Draft.Host,
		Company:    sess.Draft.Company,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return stepResp(c, sess.Step, echo.Map{
		"visitor_id": id,
		"welcome":    sess.CompletedName,
	})
}

// Back moves one step toward step 1, keeping every entered value.
func (h *CheckinHandler) Back(c echo.Context) error {
	sess := mw.SessionFrom(c)
	h.Engine.Back(sess)
	return stepResp(c, sess.Step, nil)
}

// Reset starts a new check-in from a clean slate.
func (h *CheckinHandler) Reset(c echo.Context) error {
	sess := mw.SessionFrom(c)
	h.Engine.Reset(sess)
	return stepResp(c, sess.Step, nil)
}

// Logout clears all workflow and authentication state and returns the
// session to the home page.
func (h *CheckinHandler) Logout(c echo.Context) error {
	sess := mw.SessionFrom(c)
	sess.Logout()
	return c.JSON(http.StatusOK, echo.Map{"page": model.PageHome})
}
