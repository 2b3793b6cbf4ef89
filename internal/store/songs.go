package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// SavedSong is a song a user added to their personal list. When listed, the
// matching review (if any) is attached.
type SavedSong struct {
	ID        int64  `json:"id"`
	Song      string `json:"song"`
	Username  string `json:"username"`
	Artist    string `json:"artist,omitempty"`
	Title     string `json:"title,omitempty"`
	Image     string `json:"image,omitempty"`
	Listeners int64  `json:"listeners,omitempty"`
	URL       string `json:"url,omitempty"`

	UserScore  *int    `json:"user_score,omitempty"`
	UserReview *string `json:"user_review,omitempty"`
	HasReview  bool    `json:"has_review"`
}

func validateSong(s SavedSong) error {
	if strings.TrimSpace(s.Song) == "" {
		return fmt.Errorf("%w: song name is required", ErrInvalidSong)
	}
	if strings.TrimSpace(s.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidSong)
	}
	return nil
}

// AddSong persists a saved song and returns its generated id. The
// (username, song) pair is covered by a unique constraint, so a duplicate add
// surfaces as ErrSongExists regardless of concurrent requests.
func (s *Store) AddSong(ctx context.Context, song SavedSong) (int64, error) {
	if err := validateSong(song); err != nil {
		return 0, err
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO saved_songs (username, song, artist, title, image, listeners, url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, strings.TrimSpace(song.Username), strings.TrimSpace(song.Song),
		song.Artist, song.Title, song.Image, song.Listeners, song.URL).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrSongExists
		}
		return 0, fmt.Errorf("insert song: %w", err)
	}

	return id, nil
}

// SongsByUser returns the user's saved songs in the order they were added,
// each enriched with its review when one matches on username, song, artist
// and title.
func (s *Store) SongsByUser(ctx context.Context, username string) ([]SavedSong, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.username, s.song, s.artist, s.title, s.image, s.listeners, s.url,
		       r.score, r.review_text
		FROM saved_songs s
		LEFT JOIN reviews r
		  ON r.username = s.username
		 AND r.song_name = s.song
		 AND r.artist = s.artist
		 AND r.title = s.title
		WHERE s.username = $1
		ORDER BY s.created_at ASC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("select songs: %w", err)
	}
	defer rows.Close()

	var songs []SavedSong
	for rows.Next() {
		var (
			song  SavedSong
			score sql.NullInt64
			text  sql.NullString
		)
		if err := rows.Scan(&song.ID, &song.Username, &song.Song, &song.Artist,
			&song.Title, &song.Image, &song.Listeners, &song.URL, &score, &text); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		if score.Valid {
			v := int(score.Int64)
			song.UserScore = &v
			song.UserReview = &text.String
			song.HasReview = true
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}

	return songs, nil
}

// DeleteSong removes one saved song and its review in a single transaction.
func (s *Store) DeleteSong(ctx context.Context, username, songName string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		DELETE FROM saved_songs
		WHERE username = $1 AND song = $2
	`, username, songName)
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrSongNotFound
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM reviews
		WHERE username = $1 AND song_name = $2
	`, username, songName); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

// DeleteAllSongs removes every saved song and review for the user in one
// transaction and reports how many songs were removed. Zero is not an error.
func (s *Store) DeleteAllSongs(ctx context.Context, username string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM reviews
		WHERE username = $1
	`, username); err != nil {
		return 0, fmt.Errorf("delete reviews: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		DELETE FROM saved_songs
		WHERE username = $1
	`, username)
	if err != nil {
		return 0, fmt.Errorf("delete songs: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return deleted, nil
}
