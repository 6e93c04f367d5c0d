package model

// AdminUser mirrors the 'admins' table.  Email is unique at the database
// level; duplicate registrations surface as a distinct error, not a generic
// query failure.
type AdminUser struct {
	ID           uint64 `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
