package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mw "github.com/velora-hq/frontdesk/internal/middleware"
	"github.com/velora-hq/frontdesk/internal/model"
)

// PageHandler is the page router: it maps a named page onto the screen
// descriptor the client should render.  Pure dispatch, no business logic.
type PageHandler struct{}

func NewPageHandler() *PageHandler { return &PageHandler{} }

// Get resolves a page by name and records it as the session's current page.
// An unknown name never fails the request: it dispatches to home with a
// visible notice.  Protected pages are flagged so an unauthenticated client
// renders the matching login screen instead.
func (h *PageHandler) Get(c echo.Context) error {
	sess := mw.SessionFrom(c)

	page, known := model.ParsePage(c.Param("page"))
	resp := echo.Map{
		"page":      page,
		"step":      sess.Step,
		"logged_in": sess.LoggedIn(),
	}
	if !known {
		resp["notice"] = "page not found, showing home"
	}
	if page.Protected() && !sess.LoggedIn() {
		resp["requires_login"] = true
	}
	if sess.CompletedName != "" {
		resp["welcome"] = sess.CompletedName
	}
	if sess.LoggedIn() {
		resp["admin_name"] = sess.AdminName
	}

	sess.Page = page
	return c.JSON(http.StatusOK, resp)
}

// Index lists every routable page so clients can build navigation without
// hard-coding names.
func (h *PageHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"pages": model.Pages})
}
