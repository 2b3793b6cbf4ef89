package main

import (
	"context"
	"database/sql"
	"fmt"
)

// ensureSchema creates the tables on startup. The unique constraints back the
// duplicate-song rejection and the one-review-per-song rule; there is no
// separate migration tooling.
func ensureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS saved_songs (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			song TEXT NOT NULL,
			artist TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			listeners BIGINT NOT NULL DEFAULT 0,
			url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (username, song)
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			song_name TEXT NOT NULL,
			artist TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			score INT NOT NULL,
			review_text TEXT NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			UNIQUE (username, song_name)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
