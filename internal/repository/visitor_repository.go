package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/velora-hq/frontdesk/internal/model"
)

type VisitorRepo struct{ DB *sql.DB }

func NewVisitorRepo(db *sql.DB) *VisitorRepo { return &VisitorRepo{DB: db} }

const visitorCols = `id, full_name, email, phone, company, designation, department,
gender, host, visit_type, purpose, address,
has_laptop, has_documents, has_power_bank, has_other,
signature, registered_at, checkout_at`

// Create inserts the visitor row together with its visitor_log snapshot in
// one transaction.  Either both rows exist afterwards or neither does.  The
// generated visitor ID is returned.
func (r *VisitorRepo) Create(ctx context.Context, v *model.Visitor) (uint64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, classify(err)
	}
	defer func() { _ = tx.Rollback() }()

	if v.RegisteredAt.IsZero() {
		v.RegisteredAt = time.Now().UTC()
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO visitors
		(full_name, email, phone, company, designation, department,
		 gender, host, visit_type, purpose, address,
		 has_laptop, has_documents, has_power_bank, has_other,
		 signature, registered_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		v.FullName, v.Email, v.Phone, v.Company, v.Designation, v.Department,
		v.Gender, v.Host, string(v.VisitType), v.Purpose, v.Address,
		v.Belongings.Laptop, v.Belongings.Documents, v.Belongings.PowerBank, v.Belongings.Other,
		v.Signature, v.RegisteredAt)
	if err != nil {
		return 0, classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, classify(err)
	}
	v.ID = uint64(id)

	logKey := fmt.Sprintf("VL-%s-%d", v.RegisteredAt.UTC().Format("20060102150405"), v.ID)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO visitor_log
		(visitor_id, log_key, full_name, host, company, registered_at_text, status)
		VALUES (?,?,?,?,?,?,?)`,
		v.ID, logKey, v.FullName, v.Host, v.Company,
		v.RegisteredAt.UTC().Format("02 Jan 2006 15:04"), model.StatusCheckedIn); err != nil {
		return 0, classify(err)
	}

	if err := tx.Commit(); err != nil {
		return 0, classify(err)
	}
	return v.ID, nil
}

// Checkout sets the checkout timestamp of a checked-in visitor.  A second
// checkout of the same visitor returns ErrAlreadyCheckedOut; an unknown ID
// returns ErrNotFound.  The timestamp must land strictly after the
// registration timestamp, so equal or earlier values are nudged forward.
func (r *VisitorRepo) Checkout(ctx context.Context, id uint64, at time.Time) error {
	var registeredAt time.Time
	var checkoutAt sql.NullTime
	err := r.DB.QueryRowContext(ctx,
		`SELECT registered_at, checkout_at FROM visitors WHERE id=? LIMIT 1`, id).
		Scan(&registeredAt, &checkoutAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return classify(err)
	}
	if checkoutAt.Valid {
		return ErrAlreadyCheckedOut
	}
	if !at.After(registeredAt) {
		at = registeredAt.Add(time.Second)
	}

	res, err := r.DB.ExecContext(ctx,
		`UPDATE visitors SET checkout_at=? WHERE id=? AND checkout_at IS NULL`,
		at.UTC(), id)
	if err != nil {
		return classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify(err)
	}
	if n == 0 {
		// Lost the race with a concurrent checkout of the same visitor.
		return ErrAlreadyCheckedOut
	}
	return nil
}

// ListRecent returns all visitors registered within the trailing window,
// newest first.
func (r *VisitorRepo) ListRecent(ctx context.Context, window time.Duration) ([]model.Visitor, error) {
	since := time.Now().UTC().Add(-window)
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+visitorCols+` FROM visitors WHERE registered_at >= ? ORDER BY registered_at DESC, id DESC`,
		since)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var out []model.Visitor
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, classify(err)
		}
		out = append(out, v)
	}
	return out, classify(rows.Err())
}

// GetByID fetches a single visitor.
func (r *VisitorRepo) GetByID(ctx context.Context, id uint64) (model.Visitor, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+visitorCols+` FROM visitors WHERE id=? LIMIT 1`, id)
	v, err := scanVisitor(row)
	if err == sql.ErrNoRows {
		return model.Visitor{}, ErrNotFound
	}
	if err != nil {
		return model.Visitor{}, classify(err)
	}
	return v, nil
}

// LogForVisitor fetches the audit snapshot written alongside a visitor row.
func (r *VisitorRepo) LogForVisitor(ctx context.Context, visitorID uint64) (model.VisitorLog, error) {
	var l model.VisitorLog
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, visitor_id, log_key, full_name, host, company, registered_at_text, status, created_at
		 FROM visitor_log WHERE visitor_id=? LIMIT 1`, visitorID).
		Scan(&l.ID, &l.VisitorID, &l.LogKey, &l.FullName, &l.Host, &l.Company,
			&l.RegisteredAt, &l.Status, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return model.VisitorLog{}, ErrNotFound
	}
	if err != nil {
		return model.VisitorLog{}, classify(err)
	}
	return l, nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanVisitor(row rowScanner) (model.Visitor, error) {
	var v model.Visitor
	var visitType string
	var checkout sql.NullTime
	err := row.Scan(&v.ID, &v.FullName, &v.Email, &v.Phone, &v.Company, &v.Designation,
		&v.Department, &v.Gender, &v.Host, &visitType, &v.Purpose, &v.Address,
		&v.Belongings.Laptop, &v.Belongings.Documents, &v.Belongings.PowerBank, &v.Belongings.Other,
		&v.Signature, &v.RegisteredAt, &checkout)
	if err != nil {
		return model.Visitor{}, err
	}
	v.VisitType = model.ParseVisitType(visitType)
	if checkout.Valid {
		t := checkout.Time
		v.CheckoutAt = &t
	}
	return v, nil
}
