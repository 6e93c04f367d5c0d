package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/velora-hq/frontdesk/internal/secrets"
)

// Open connects to MySQL using credentials resolved from the secret store
// and verifies the connection.  The returned pool is injected into the
// repositories; nothing else in the application touches the driver.
func Open(ctx context.Context, provider secrets.Provider) (*sql.DB, error) {
	creds, err := provider.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		creds.User, creds.Password, creds.Host, creds.Port, creds.Name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, err
	}
	return db, nil
}
