// Package repository implements the persistence gateway over MySQL.  Each
// repository wraps one aggregate's SQL statements; sentinel errors defined
// here let handlers branch on failure categories without inspecting driver
// internals.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicate wraps any unique-constraint violation (MySQL error 1062).
var ErrDuplicate = errors.New("duplicate entry")

// ErrEmailExists is returned when an admin registration hits the unique
// email constraint.  Handlers translate this into a specific user-facing
// message, distinct from generic query failures.
var ErrEmailExists = errors.New("email already exists")

// ErrNotFound is returned when an operation targets a row that does not
// exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyCheckedOut is returned when a checkout targets a visitor whose
// checkout timestamp is already set.  Double checkout is rejected rather
// than treated as last-write-wins.
var ErrAlreadyCheckedOut = errors.New("visitor already checked out")

// ErrSlotTaken is returned when a conference booking overlaps an existing
// booking for the room.
var ErrSlotTaken = errors.New("time slot already booked")

// ErrUnavailable wraps connectivity failures: the database could not be
// reached or the connection died mid-operation.  Handlers show these as a
// dismissible "service unavailable" banner.
var ErrUnavailable = errors.New("database unavailable")

// ErrQuery wraps every other persistence failure.  Handlers show a generic
// message; no partial writes are retained.
var ErrQuery = errors.New("query failed")

const mysqlErrDupEntry = 1062

// classify maps a raw driver error into the gateway's error taxonomy.
// Server-side errors from MySQL keep their detail behind ErrQuery; dial and
// I/O errors become ErrUnavailable.  sql.ErrNoRows is left to the caller,
// which knows what "no rows" means for its statement.
func classify(err error) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return err
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		if myErr.Number == mysqlErrDupEntry {
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return fmt.Errorf("%w: %v", ErrQuery, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrQuery, err)
}
