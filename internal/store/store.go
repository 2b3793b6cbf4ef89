package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrSongExists signals the user already saved this song.
	ErrSongExists = errors.New("song already saved")
	// ErrSongNotFound indicates no saved song matched.
	ErrSongNotFound = errors.New("song not found")
	// ErrReviewNotFound indicates no review matched.
	ErrReviewNotFound = errors.New("review not found")
	// ErrInvalidSong indicates a song payload failed validation.
	ErrInvalidSong = errors.New("invalid song")
	// ErrInvalidReview indicates a review payload failed validation.
	ErrInvalidReview = errors.New("invalid review")
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
