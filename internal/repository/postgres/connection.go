package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

// Connect opens a connection pool to PostgreSQL and verifies it with a ping,
// retrying for a while so the server can start before the database is ready.
func Connect(databaseURL string, logger *slog.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 0; i < 15; i++ {
		db, err = sql.Open("postgres", databaseURL)
		if err != nil {
			logger.Warn("failed to open database, retrying", "err", err)
			time.Sleep(2 * time.Second)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.PingContext(ctx)
		cancel()
		if err == nil {
			db.SetMaxOpenConns(25)
			db.SetMaxIdleConns(5)
			db.SetConnMaxLifetime(30 * time.Minute)
			return db, nil
		}

		logger.Warn("failed to ping database, retrying", "err", err)
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("could not connect to database: %w", err)
}
