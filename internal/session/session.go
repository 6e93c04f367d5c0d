// Package session holds the per-session workflow context: the current
// page, the check-in flow position, the partial visitor record accumulated
// across steps, and the admin login flag.  One process serves many
// independent sessions; state is never shared between them.
package session

import (
	"context"
	"errors"

	"github.com/velora-hq/frontdesk/internal/model"
)

// ErrNoSession is returned by Store.Load when the ID is unknown or the
// session has expired.
var ErrNoSession = errors.New("session not found")

// Session is the per-user workflow context.  It is serialized as JSON into
// the backing store and round-tripped on every request.
type Session struct {
	ID            string        `json:"id"`
	Page          model.Page    `json:"page"`
	Step          int           `json:"step"` // flow position, see the flow package constants
	Draft         model.Visitor `json:"draft"`
	CompletedName string        `json:"completed_name,omitempty"`
	AdminID       uint64        `json:"admin_id,omitempty"`
	AdminName     string        `json:"admin_name,omitempty"`
}

// New returns a fresh session positioned at step 1 of the check-in flow
// with an empty partial record.
func New(id string) *Session {
	return &Session{ID: id, Page: model.PageHome, Step: 1}
}

// LoggedIn reports whether an admin has authenticated in this session.
func (s *Session) LoggedIn() bool { return s.AdminID != 0 }

// ResetFlow discards the partial record and returns the flow to step 1.
func (s *Session) ResetFlow() {
	s.Step = 1
	s.Draft = model.Visitor{}
	s.CompletedName = ""
}

// Logout clears all workflow and authentication state.
func (s *Session) Logout() {
	s.ResetFlow()
	s.AdminID = 0
	s.AdminName = ""
	s.Page = model.PageHome
}

// Store persists sessions for their time-to-live.  Save refreshes the TTL.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}
