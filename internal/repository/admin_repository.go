package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/velora-hq/frontdesk/internal/model"
	"github.com/velora-hq/frontdesk/internal/utils"
)

type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// dummyHash is compared against when a login email does not exist, so the
// verify path costs the same whether or not the account is real.
const dummyHash = "$2a$12$C6UzMDM.H6dfI/f/IKcEeO5pUDXBSO1pFZp0Zkcc09O5RyToFQEky"

// Create inserts an admin and returns its ID.  A duplicate email surfaces
// as ErrEmailExists.
func (r *AdminRepo) Create(ctx context.Context, fullName, email, password string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO admins (full_name, email, password_hash) VALUES (?,?,?)",
		fullName, email, hash)
	if err != nil {
		err = classify(err)
		if errors.Is(err, ErrDuplicate) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, classify(err)
	}
	return uint64(id), nil
}

// GetByEmail fetches an admin by normalized email.  Missing rows surface as
// ErrNotFound.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (model.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var a model.AdminUser
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, full_name, email, password_hash FROM admins WHERE email=? LIMIT 1",
		email).Scan(&a.ID, &a.FullName, &a.Email, &a.PasswordHash)
	if err == sql.ErrNoRows {
		return model.AdminUser{}, ErrNotFound
	}
	if err != nil {
		return model.AdminUser{}, classify(err)
	}
	return a, nil
}

// Verify checks an email/password pair.  The response shape is constant:
// whether the email is unknown or the password wrong, the caller gets
// (AdminUser{}, false) — and a bcrypt comparison runs either way.
func (r *AdminRepo) Verify(ctx context.Context, email, password string) (model.AdminUser, bool, error) {
	a, err := r.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		utils.VerifyPassword(dummyHash, password)
		return model.AdminUser{}, false, nil
	}
	if err != nil {
		return model.AdminUser{}, false, err
	}
	if !utils.VerifyPassword(a.PasswordHash, password) {
		return model.AdminUser{}, false, nil
	}
	return a, true, nil
}

// UpdatePassword overwrites the stored hash for the given email.  This is
// the simplified reset flow: find by email, replace the hash.
func (r *AdminRepo) UpdatePassword(ctx context.Context, email, newPassword string, cost int) error {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(newPassword, cost)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		"UPDATE admins SET password_hash=? WHERE email=?", hash, email)
	if err != nil {
		return classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
