// Package flow drives the three-step visitor check-in workflow.  The engine
// owns the step state machine and its validation contract; durable writes
// happen only at the final step, through a narrow gateway interface.
//
// States and transitions:
//
//	Step1 -> Step2      requires name, email, phone
//	Step2 -> Step3      requires host; everything else optional
//	Step3 -> Complete   requires signature, then one atomic insert
//	StepN -> StepN-1    unconditional back, entered values preserved
//	Complete -> Step1   explicit reset, partial record discarded
//
// Required-field checks run only at the boundary out of the step that owns
// those fields; earlier steps are never revalidated.
package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/velora-hq/frontdesk/internal/model"
	"github.com/velora-hq/frontdesk/internal/session"
)

// Flow positions stored in session.Session.Step.
const (
	Step1    = 1
	Step2    = 2
	Step3    = 3
	Complete = 4
)

// ErrWrongStep is returned when a submission arrives for a step the
// session is not on, e.g. a stale form post after the flow moved on.
var ErrWrongStep = errors.New("submission does not match current step")

// ValidationError reports a missing required field.  The session state is
// unchanged when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func missing(field string) error {
	return &ValidationError{Field: field, Message: "this field is required"}
}

// VisitorCreator is the slice of the persistence gateway the engine needs:
// the atomic visitor+log insert performed at the final step.
type VisitorCreator interface {
	Create(ctx context.Context, v *model.Visitor) (uint64, error)
}

// Engine executes flow transitions against a session.  It is stateless
// itself; all workflow state lives in the session passed to each call.
type Engine struct {
	visitors VisitorCreator
}

func New(visitors VisitorCreator) *Engine { return &Engine{visitors: visitors} }

// Step1Input carries the primary details collected on the first screen.
type Step1Input struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Step2Input carries the organisation details collected on the second
// screen.  Only Host is required; the belongings flags default to false.
type Step2Input struct {
	Host        string           `json:"host"`
	Company     string           `json:"company"`
	Designation string           `json:"designation"`
	Department  string           `json:"department"`
	Gender      string           `json:"gender"`
	VisitType   string           `json:"visit_type"`
	Purpose     string           `json:"purpose"`
	Address     string           `json:"address"`
	Belongings  model.Belongings `json:"belongings"`
}

// Step3Input carries the identity confirmation from the final screen.
type Step3Input struct {
	Signature string `json:"signature"`
}

// SubmitStep1 validates the primary details and advances to step 2.  On
// validation failure the session stays on step 1 with the draft untouched.
func (e *Engine) SubmitStep1(s *session.Session, in Step1Input) error {
	if s.Step != Step1 {
		return ErrWrongStep
	}
	name := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)
	switch {
	case name == "":
		return missing("full_name")
	case email == "":
		return missing("email")
	case phone == "":
		return missing("phone")
	}
	s.Draft.FullName = name
	s.Draft.Email = email
	s.Draft.Phone = phone
	s.Step = Step2
	return nil
}

// SubmitStep2 validates the organisation details and advances to step 3.
// All fields except the host are optional and merged as given.
func (e *Engine) SubmitStep2(s *session.Session, in Step2Input) error {
	if s.Step != Step2 {
		return ErrWrongStep
	}
	host := strings.TrimSpace(in.Host)
	if host == "" {
		return missing("host")
	}
	s.Draft.Host = host
	s.Draft.Company = strings.TrimSpace(in.Company)
	s.Draft.Designation = strings.TrimSpace(in.Designation)
	s.Draft.Department = strings.TrimSpace(in.Department)
	s.Draft.Gender = strings.TrimSpace(in.Gender)
	s.Draft.VisitType = model.ParseVisitType(strings.ToUpper(strings.TrimSpace(in.VisitType)))
	s.Draft.Purpose = strings.TrimSpace(in.Purpose)
	s.Draft.Address = strings.TrimSpace(in.Address)
	s.Draft.Belongings = in.Belongings
	s.Step = Step3
	return nil
}

// SubmitStep3 validates the signature and commits the merged record through
// the gateway.  On persistence failure the session stays on step 3 with the
// draft intact — nothing was written, so resubmission is safe.  On success
// the flow moves to Complete and keeps the visitor's name for the welcome
// message.
func (e *Engine) SubmitStep3(ctx context.Context, s *session.Session, in Step3Input) (uint64, error) {
	if s.Step != Step3 {
		return 0, ErrWrongStep
	}
	sig := strings.TrimSpace(in.Signature)
	if sig == "" {
		return 0, missing("signature")
	}
	s.Draft.Signature = sig
	s.Draft.RegisteredAt = time.Now().UTC()

	id, err := e.visitors.Create(ctx, &s.Draft)
	if err != nil {
		return 0, err
	}
	s.Step = Complete
	s.CompletedName = s.Draft.FullName
	return id, nil
}

// Back moves one step toward step 1 without discarding any entered values.
// At step 1 (or after completion) it does nothing.
func (e *Engine) Back(s *session.Session) {
	if s.Step == Step2 || s.Step == Step3 {
		s.Step--
	}
}

// Reset starts a new check-in: the partial record is cleared entirely and
// the flow returns to step 1.
func (e *Engine) Reset(s *session.Session) {
	s.ResetFlow()
}
