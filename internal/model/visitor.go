package model

import "time"

// VisitType classifies why a visitor is on site.  The set is closed;
// anything else entered at the form boundary is coerced to VisitTypeVisitor.
type VisitType string

const (
	VisitTypeVendor   VisitType = "VENDOR"
	VisitTypeCustomer VisitType = "CUSTOMER"
	VisitTypeVisitor  VisitType = "VISITOR"
)

// ParseVisitType normalizes a free-form visit type string.  Unknown values
// fall back to VisitTypeVisitor so a stray client value never fails a
// check-in.
func ParseVisitType(s string) VisitType {
	switch VisitType(s) {
	case VisitTypeVendor, VisitTypeCustomer, VisitTypeVisitor:
		return VisitType(s)
	}
	return VisitTypeVisitor
}

// Belongings records what a visitor carries past the front desk.  All flags
// default to false; they are only meaningful on the check-in record itself.
type Belongings struct {
	Laptop    bool `json:"laptop"`
	Documents bool `json:"documents"`
	PowerBank bool `json:"power_bank"`
	Other     bool `json:"other"`
}

// Visitor mirrors the 'visitors' table.  One row per check-in; a row is
// never deleted, only checked out by setting CheckoutAt exactly once.
type Visitor struct {
	ID           uint64     `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Company      string     `json:"company"`
	Designation  string     `json:"designation"`
	Department   string     `json:"department"`
	Gender       string     `json:"gender"`
	Host         string     `json:"host"`
	VisitType    VisitType  `json:"visit_type"`
	Purpose      string     `json:"purpose"`
	Address      string     `json:"address"`
	Belongings   Belongings `json:"belongings"`
	Signature    string     `json:"signature"`
	RegisteredAt time.Time  `json:"registered_at"`
	CheckoutAt   *time.Time `json:"checkout_at,omitempty"`
}

// Visitor status labels as shown on the dashboard.
const (
	StatusCheckedIn  = "CHECKED IN"
	StatusCheckedOut = "CHECKED OUT"
)

// Status derives the display status from the checkout timestamp.
func (v Visitor) Status() string {
	if v.CheckoutAt == nil {
		return StatusCheckedIn
	}
	return StatusCheckedOut
}

// VisitorLog mirrors the 'visitor_log' table: an append-only denormalized
// snapshot written in the same transaction as the visitor row.  Rows are
// immutable after creation.
type VisitorLog struct {
	ID           uint64    `json:"id"`
	VisitorID    uint64    `json:"visitor_id"`
	LogKey       string    `json:"log_key"`
	FullName     string    `json:"full_name"`
	Host         string    `json:"host"`
	Company      string    `json:"company"`
	RegisteredAt string    `json:"registered_at"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
