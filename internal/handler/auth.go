package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velora-hq/frontdesk/internal/config"
	mw "github.com/velora-hq/frontdesk/internal/middleware"
	"github.com/velora-hq/frontdesk/internal/repository"
	"github.com/velora-hq/frontdesk/internal/utils"
)

// AuthHandler bundles dependencies for admin auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Admins *repository.AdminRepo
}

func NewAuthHandler(cfg config.Config, a *repository.AdminRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Admins: a}
}

// ----- DTOs -----

type registerReq struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type resetReq struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

type adminPart struct {
	ID       uint64 `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
type authResp struct {
	Admin   adminPart `json:"admin"`
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// Register creates an admin and returns a token immediately.  A duplicate
// email is a distinct 409, not a generic failure.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Admins.Create(ctx, req.FullName, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return persistError(c, err)
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, id, req.FullName, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	sess := mw.SessionFrom(c)
	sess.AdminID = id
	sess.AdminName = req.FullName

	return c.JSON(http.StatusCreated, authResp{
		Admin:   adminPart{ID: id, FullName: req.FullName, Email: req.Email},
		Token:   token.Token,
		Expires: token.Exp,
	})
}

// Login verifies credentials and returns a token.  The failure response is
// identical whether the email is unknown or the password is wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	admin, ok, err := h.Admins.Verify(ctx, req.Email, req.Password)
	if err != nil {
		return persistError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, admin.ID, admin.FullName, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	sess := mw.SessionFrom(c)
	sess.AdminID = admin.ID
	sess.AdminName = admin.FullName

	return c.JSON(http.StatusOK, authResp{
		Admin:   adminPart{ID: admin.ID, FullName: admin.FullName, Email: admin.Email},
		Token:   token.Token,
		Expires: token.Exp,
	})
}

// Logout drops the login flag from the session.  The access token is not
// revocable; clients discard it.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := mw.SessionFrom(c)
	sess.Logout()
	return c.NoContent(http.StatusNoContent)
}

// ResetPassword is the simplified reset flow: find the account by email and
// overwrite its hash.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/new_password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Admins.UpdatePassword(ctx, req.Email, req.NewPassword, h.Cfg.BcryptCost); err != nil {
		return persistError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "password updated"})
}
