package handler_test

import (
	"testing"
	"time"

	"github.com/velora-hq/frontdesk/internal/handler"
	"github.com/velora-hq/frontdesk/internal/model"
)

func booking(by, dept string) model.ConferenceBooking {
	return model.ConferenceBooking{
		StartAt:    time.Now(),
		EndAt:      time.Now().Add(time.Hour),
		BookedBy:   by,
		Department: dept,
	}
}

func TestComputeStatsCountsByDepartment(t *testing.T) {
	stats := handler.ComputeStats([]model.ConferenceBooking{
		booking("ana", "Engineering"),
		booking("ben", "Engineering"),
		booking("ana", "Sales"),
		booking("cid", ""),
	})
	if stats.Total != 4 {
		t.Fatalf("total = %d", stats.Total)
	}
	if stats.ByDepartment["Engineering"] != 2 || stats.ByDepartment["Sales"] != 1 {
		t.Fatalf("by department = %v", stats.ByDepartment)
	}
	if _, ok := stats.ByDepartment[""]; ok {
		t.Fatal("blank department must not be counted")
	}
}

func TestComputeStatsTopBooker(t *testing.T) {
	stats := handler.ComputeStats([]model.ConferenceBooking{
		booking("ana", "A"),
		booking("ben", "A"),
		booking("ben", "A"),
	})
	if stats.TopBooker != "ben" || stats.TopBookerCount != 2 {
		t.Fatalf("top = %q/%d", stats.TopBooker, stats.TopBookerCount)
	}
}

func TestComputeStatsTieBreaksLexicographically(t *testing.T) {
	// Regardless of input order, a tie resolves to the smallest identity.
	orders := [][]model.ConferenceBooking{
		{booking("zoe", "A"), booking("amir", "A")},
		{booking("amir", "A"), booking("zoe", "A")},
	}
	for _, bs := range orders {
		stats := handler.ComputeStats(bs)
		if stats.TopBooker != "amir" || stats.TopBookerCount != 1 {
			t.Fatalf("top = %q/%d, want amir/1", stats.TopBooker, stats.TopBookerCount)
		}
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := handler.ComputeStats(nil)
	if stats.Total != 0 || stats.TopBooker != "" || stats.TopBookerCount != 0 {
		t.Fatalf("stats = %+v", stats)
	}
}
