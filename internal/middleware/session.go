package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velora-hq/frontdesk/internal/session"
	"github.com/velora-hq/frontdesk/internal/utils"
)

// SessionCookie is the cookie carrying the workflow session ID.  Clients
// that cannot use cookies may send the same value in X-Session-Token.
const SessionCookie = "fd_session"

const sessionCtxKey = "fd_session"

// WithSession resolves the caller's workflow session from the cookie or
// header, creating a fresh one when none exists (or the stored one has
// expired), and saves it back after the handler runs.  Every route that
// touches workflow state sits behind this middleware.
func WithSession(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			id := ""
			if ck, err := c.Cookie(SessionCookie); err == nil {
				id = ck.Value
			}
			if id == "" {
				id = c.Request().Header.Get("X-Session-Token")
			}

			var sess *session.Session
			if id != "" {
				if s, err := store.Load(ctx, id); err == nil {
					sess = s
				}
			}
			if sess == nil {
				newID, err := utils.NewSessionID()
				if err != nil {
					return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session init failed"})
				}
				sess = session.New(newID)
				c.SetCookie(&http.Cookie{
					Name:     SessionCookie,
					Value:    newID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(sessionCtxKey, sess)

			if err := next(c); err != nil {
				return err
			}
			// Persist whatever the handler did to the session.  A failed
			// save means the next request starts clean, which the flow
			// handles the same as an expired session.
			return store.Save(ctx, sess)
		}
	}
}

// SessionFrom extracts the workflow session placed in the context by
// WithSession.  It panics if the middleware is missing, which is a routing
// bug, not a runtime condition.
func SessionFrom(c echo.Context) *session.Session {
	return c.Get(sessionCtxKey).(*session.Session)
}
