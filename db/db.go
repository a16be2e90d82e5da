package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Open connects to Postgres, checks the connection and makes sure the
// newsletter table exists.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqldb.PingContext(pingCtx); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	sqldb.SetMaxOpenConns(10)
	sqldb.SetMaxIdleConns(5)

	if err := createTables(ctx, sqldb); err != nil {
		sqldb.Close()
		return nil, err
	}
	return sqldb, nil
}

func createTables(ctx context.Context, sqldb *sql.DB) error {
	// email is stored lower-cased; UNIQUE keeps one row per address
	createSubscribersTable := `
	CREATE TABLE IF NOT EXISTS subscribers (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`
	if _, err := sqldb.ExecContext(ctx, createSubscribersTable); err != nil {
		return fmt.Errorf("could not create subscribers table: %w", err)
	}
	return nil
}
