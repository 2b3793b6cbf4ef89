package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// openDatabase connects to Postgres and waits for it to answer pings.
// Postgres routinely comes up a few seconds after the API container does, so
// failed pings are retried with growing backoff until the wait budget runs
// out.
func openDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	const (
		pingTimeout = 5 * time.Second
		maxWait     = 30 * time.Second
		maxBackoff  = 5 * time.Second
	)

	var lastErr error
	backoff := 500 * time.Millisecond
	for deadline := time.Now().Add(maxWait); ; {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = db.PingContext(pingCtx)
		cancel()

		if lastErr == nil {
			return db, nil
		}
		if ctx.Err() != nil || time.Now().After(deadline) {
			break
		}

		log.Debug().Err(lastErr).Dur("backoff", backoff).Msg("database not ready, retrying")
		time.Sleep(backoff)
		if backoff *= 2; backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("database never became ready: %w", lastErr)
}
