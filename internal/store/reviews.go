package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Review is a user's score and write-up for a song they saved.
type Review struct {
	ID         int64     `json:"id"`
	SongName   string    `json:"song_name"`
	Artist     string    `json:"artist"`
	Title      string    `json:"title"`
	Username   string    `json:"username"`
	Score      int       `json:"score"`
	ReviewText string    `json:"review_text"`
	Image      string    `json:"image,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func validateReview(r Review) error {
	if strings.TrimSpace(r.SongName) == "" {
		return fmt.Errorf("%w: song_name is required", ErrInvalidReview)
	}
	if strings.TrimSpace(r.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidReview)
	}
	if r.Score < 0 || r.Score > 10 {
		return fmt.Errorf("%w: score must be between 0 and 10", ErrInvalidReview)
	}
	return nil
}

// UpsertReview creates or replaces the user's review of a song. The parent
// saved song must exist; the existence check and the write share one
// transaction. A replaced review keeps its created_at.
func (s *Store) UpsertReview(ctx context.Context, review Review) error {
	if err := validateReview(review); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var exists bool
	if err := tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM saved_songs
			WHERE username = $1 AND song = $2
		)
	`, review.Username, review.SongName).Scan(&exists); err != nil {
		return fmt.Errorf("check saved song: %w", err)
	}
	if !exists {
		return ErrSongNotFound
	}

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO reviews (username, song_name, artist, title, score, review_text, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (username, song_name)
		DO UPDATE SET artist = EXCLUDED.artist, title = EXCLUDED.title,
		              score = EXCLUDED.score, review_text = EXCLUDED.review_text,
		              image = EXCLUDED.image, updated_at = EXCLUDED.updated_at
	`, review.Username, review.SongName, review.Artist, review.Title,
		review.Score, review.ReviewText, review.Image, now); err != nil {
		return fmt.Errorf("upsert review: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

// UpdateReview changes only the score, text and updated_at of an existing
// review.
func (s *Store) UpdateReview(ctx context.Context, username, songName string, score int, text string) error {
	if score < 0 || score > 10 {
		return fmt.Errorf("%w: score must be between 0 and 10", ErrInvalidReview)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE reviews
		SET score = $1, review_text = $2, updated_at = $3
		WHERE username = $4 AND song_name = $5
	`, score, text, time.Now().UTC(), username, songName)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrReviewNotFound
	}

	return nil
}

// Reviews returns every review, newest first.
func (s *Store) Reviews(ctx context.Context) ([]Review, error) {
	return s.listReviews(ctx, `
		SELECT id, username, song_name, artist, title, score, review_text, image, created_at, updated_at
		FROM reviews
		ORDER BY created_at DESC
	`)
}

// ReviewsBySong returns the reviews for one song, newest first.
func (s *Store) ReviewsBySong(ctx context.Context, songName string) ([]Review, error) {
	return s.listReviews(ctx, `
		SELECT id, username, song_name, artist, title, score, review_text, image, created_at, updated_at
		FROM reviews
		WHERE song_name = $1
		ORDER BY created_at DESC
	`, songName)
}

func (s *Store) listReviews(ctx context.Context, query string, args ...any) ([]Review, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select reviews: %w", err)
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var r Review
		if err := rows.Scan(&r.ID, &r.Username, &r.SongName, &r.Artist, &r.Title,
			&r.Score, &r.ReviewText, &r.Image, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	return reviews, nil
}

// DeleteReview removes one review.
func (s *Store) DeleteReview(ctx context.Context, username, songName string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM reviews
		WHERE username = $1 AND song_name = $2
	`, username, songName)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrReviewNotFound
	}

	return nil
}
