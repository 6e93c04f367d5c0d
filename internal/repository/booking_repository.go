package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/velora-hq/frontdesk/internal/model"
)

type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts a conference booking and returns its ID.  The slot is
// checked for overlap against existing bookings inside the same
// transaction; an overlapping [start, end) interval returns ErrSlotTaken.
func (r *BookingRepo) Create(ctx context.Context, b *model.ConferenceBooking) (uint64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, classify(err)
	}
	defer func() { _ = tx.Rollback() }()

	// Half-open interval overlap: existing.start < new.end AND new.start < existing.end.
	var clashes int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM conference_bookings WHERE start_at < ? AND ? < end_at`,
		b.EndAt.UTC(), b.StartAt.UTC()).Scan(&clashes); err != nil {
		return 0, classify(err)
	}
	if clashes > 0 {
		return 0, ErrSlotTaken
	}

	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO conference_bookings (start_at, end_at, purpose, booked_by, department, created_at)
		 VALUES (?,?,?,?,?,?)`,
		b.StartAt.UTC(), b.EndAt.UTC(), b.Purpose, b.BookedBy, b.Department, b.CreatedAt)
	if err != nil {
		return 0, classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, classify(err)
	}
	b.ID = uint64(id)

	if err := tx.Commit(); err != nil {
		return 0, classify(err)
	}
	return b.ID, nil
}

// List returns every booking, newest start time first.  The conference
// dashboard aggregates over the full result set in memory.
func (r *BookingRepo) List(ctx context.Context) ([]model.ConferenceBooking, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, start_at, end_at, purpose, booked_by, department, created_at
		 FROM conference_bookings ORDER BY start_at DESC, id DESC`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var out []model.ConferenceBooking
	for rows.Next() {
		var b model.ConferenceBooking
		if err := rows.Scan(&b.ID, &b.StartAt, &b.EndAt, &b.Purpose,
			&b.BookedBy, &b.Department, &b.CreatedAt); err != nil {
			return nil, classify(err)
		}
		out = append(out, b)
	}
	return out, classify(rows.Err())
}
