// Package queue defines the audit events exchanged over the message broker
// and the background consumer that turns them into the audit log file.
package queue

// Audit event types.
const (
	TypeVisitorCheckedIn  = "visitor.checked_in"
	TypeVisitorCheckedOut = "visitor.checked_out"
	TypeBookingCreated    = "booking.created"
)

// AuditEvent is the envelope published to the frontdesk.audit queue.  It
// carries enough denormalized detail for downstream consumers to log or
// notify without querying the primary database.  Fields are populated per
// event type; unused ones stay empty.
type AuditEvent struct {
	Type       string `json:"type"`
	VisitorID  uint64 `json:"visitor_id,omitempty"`
	BookingID  uint64 `json:"booking_id,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	Host       string `json:"host,omitempty"`
	Company    string `json:"company,omitempty"`
	BookedBy   string `json:"booked_by,omitempty"`
	Department string `json:"department,omitempty"`
	StartsAt   string `json:"starts_at,omitempty"`
	EndsAt     string `json:"ends_at,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
