package model_test

import (
	"testing"
	"time"

	"github.com/velora-hq/frontdesk/internal/model"
)

func TestParsePageKnownNames(t *testing.T) {
	for _, p := range model.Pages {
		got, ok := model.ParsePage(string(p))
		if !ok || got != p {
			t.Fatalf("ParsePage(%q) = %q, %v", p, got, ok)
		}
	}
}

func TestParsePageFailsOpenToHome(t *testing.T) {
	for _, name := range []string{"", "nope", "visitor-step4", "HOME"} {
		got, ok := model.ParsePage(name)
		if ok {
			t.Fatalf("ParsePage(%q) reported known", name)
		}
		if got != model.PageHome {
			t.Fatalf("ParsePage(%q) = %q, want home fallback", name, got)
		}
	}
}

func TestProtectedPages(t *testing.T) {
	protected := map[model.Page]bool{
		model.PageVisitorDashboard:    true,
		model.PageConferenceDashboard: true,
		model.PageConferenceBooking:   true,
	}
	for _, p := range model.Pages {
		if p.Protected() != protected[p] {
			t.Fatalf("%q.Protected() = %v", p, p.Protected())
		}
	}
}

func TestVisitorStatusDerivation(t *testing.T) {
	v := model.Visitor{RegisteredAt: time.Now()}
	if v.Status() != model.StatusCheckedIn {
		t.Fatalf("status = %q", v.Status())
	}
	out := v.RegisteredAt.Add(time.Hour)
	v.CheckoutAt = &out
	if v.Status() != model.StatusCheckedOut {
		t.Fatalf("status = %q", v.Status())
	}
}

func TestParseVisitType(t *testing.T) {
	cases := map[string]model.VisitType{
		"VENDOR":   model.VisitTypeVendor,
		"CUSTOMER": model.VisitTypeCustomer,
		"VISITOR":  model.VisitTypeVisitor,
		"vendor":   model.VisitTypeVisitor, // parse is case-sensitive; callers upper-case first
		"":         model.VisitTypeVisitor,
		"ALIEN":    model.VisitTypeVisitor,
	}
	for in, want := range cases {
		if got := model.ParseVisitType(in); got != want {
			t.Fatalf("ParseVisitType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBookingOverlap(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 3, 2, h, 0, 0, 0, time.UTC) }
	base := model.ConferenceBooking{StartAt: at(10), EndAt: at(12)}

	cases := []struct {
		name  string
		other model.ConferenceBooking
		want  bool
	}{
		{"inside", model.ConferenceBooking{StartAt: at(10).Add(30 * time.Minute), EndAt: at(11)}, true},
		{"straddles start", model.ConferenceBooking{StartAt: at(9), EndAt: at(11)}, true},
		{"straddles end", model.ConferenceBooking{StartAt: at(11), EndAt: at(13)}, true},
		{"covers", model.ConferenceBooking{StartAt: at(9), EndAt: at(13)}, true},
		{"back to back before", model.ConferenceBooking{StartAt: at(8), EndAt: at(10)}, false},
		{"back to back after", model.ConferenceBooking{StartAt: at(12), EndAt: at(14)}, false},
		{"disjoint", model.ConferenceBooking{StartAt: at(14), EndAt: at(15)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
			if got := tc.other.Overlaps(base); got != tc.want {
				t.Fatalf("Overlaps (reversed) = %v, want %v", got, tc.want)
			}
		})
	}
}
