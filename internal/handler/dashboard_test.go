package handler_test

import (
	"testing"
	"time"

	"github.com/velora-hq/frontdesk/internal/handler"
	"github.com/velora-hq/frontdesk/internal/model"
)

func TestDisplayRowCheckedIn(t *testing.T) {
	v := model.Visitor{
		ID:           3,
		FullName:     "Jane Doe",
		VisitType:    model.VisitTypeVendor,
		Belongings:   model.Belongings{Laptop: true, PowerBank: true},
		RegisteredAt: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
	}
	row := handler.DisplayRow(v)

	if row.Status != model.StatusCheckedIn {
		t.Fatalf("status = %q", row.Status)
	}
	if row.RegisteredAt != "02 Mar 2026 09:30" {
		t.Fatalf("registered = %q", row.RegisteredAt)
	}
	if row.CheckoutAt != "-" {
		t.Fatalf("checkout = %q, want placeholder", row.CheckoutAt)
	}
	if row.Laptop != "yes" || row.PowerBank != "yes" {
		t.Fatalf("carried belongings = %q/%q", row.Laptop, row.PowerBank)
	}
	if row.Documents != "-" || row.Other != "-" {
		t.Fatalf("absent belongings = %q/%q", row.Documents, row.Other)
	}
	if row.VisitType != "VENDOR" {
		t.Fatalf("visit type = %q", row.VisitType)
	}
}

func TestDisplayRowCheckedOut(t *testing.T) {
	reg := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	out := reg.Add(2 * time.Hour)
	v := model.Visitor{ID: 4, FullName: "Ben", RegisteredAt: reg, CheckoutAt: &out}

	row := handler.DisplayRow(v)
	if row.Status != model.StatusCheckedOut {
		t.Fatalf("status = %q", row.Status)
	}
	if row.CheckoutAt != "02 Mar 2026 11:00" {
		t.Fatalf("checkout = %q", row.CheckoutAt)
	}
}
