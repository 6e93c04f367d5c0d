package model

import "time"

// ConferenceBooking mirrors the 'conference_bookings' table.  Bookings are
// write-once: created by a booking submission and read-only afterwards.
// There is a single conference room, so [StartAt, EndAt) intervals of two
// bookings must not overlap.
type ConferenceBooking struct {
	ID         uint64    `json:"id"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	Purpose    string    `json:"purpose"`
	BookedBy   string    `json:"booked_by"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// Overlaps reports whether two bookings compete for the room.  Intervals
// are half-open, so a meeting may start exactly when the previous one ends.
func (b ConferenceBooking) Overlaps(other ConferenceBooking) bool {
	return b.StartAt.Before(other.EndAt) && other.StartAt.Before(b.EndAt)
}
