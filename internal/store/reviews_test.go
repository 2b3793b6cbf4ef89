package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestValidateReview(t *testing.T) {
	tests := []struct {
		name    string
		review  Review
		wantErr bool
	}{
		{
			name:   "valid review",
			review: Review{SongName: "Teardrop", Username: "alice", Score: 8},
		},
		{
			name:    "score too high",
			review:  Review{SongName: "Teardrop", Username: "alice", Score: 11},
			wantErr: true,
		},
		{
			name:    "negative score",
			review:  Review{SongName: "Teardrop", Username: "alice", Score: -1},
			wantErr: true,
		},
		{
			name:    "missing song name",
			review:  Review{Username: "alice", Score: 5},
			wantErr: true,
		},
		{
			name:    "missing username",
			review:  Review{SongName: "Teardrop", Score: 5},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := validateReview(tc.review)
			if tc.wantErr && !errors.Is(err, ErrInvalidReview) {
				t.Fatalf("expected ErrInvalidReview, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected nil error but got %v", err)
			}
		})
	}
}

func TestUpsertReviewMissingSong(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs("alice", "Ghost Song").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	err = s.UpsertReview(context.Background(), Review{
		SongName: "Ghost Song",
		Username: "alice",
		Score:    7,
	})
	if !errors.Is(err, ErrSongNotFound) {
		t.Fatalf("expected ErrSongNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsertReviewSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs("alice", "Teardrop").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO reviews`)).
		WithArgs("alice", "Teardrop", "Massive Attack", "Teardrop", 9, "gorgeous", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = s.UpsertReview(context.Background(), Review{
		SongName:   "Teardrop",
		Artist:     "Massive Attack",
		Title:      "Teardrop",
		Username:   "alice",
		Score:      9,
		ReviewText: "gorgeous",
	})
	if err != nil {
		t.Fatalf("UpsertReview error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsertReviewInvalidScore(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	err = s.UpsertReview(context.Background(), Review{SongName: "Teardrop", Username: "alice", Score: 42})
	if !errors.Is(err, ErrInvalidReview) {
		t.Fatalf("expected ErrInvalidReview, got %v", err)
	}
}

func TestUpdateReviewNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reviews`)).
		WithArgs(5, "better than I remembered", sqlmock.AnyArg(), "alice", "Nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = s.UpdateReview(context.Background(), "alice", "Nope", 5, "better than I remembered")
	if !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestUpdateReviewSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reviews`)).
		WithArgs(10, "a classic", sqlmock.AnyArg(), "alice", "Teardrop").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.UpdateReview(context.Background(), "alice", "Teardrop", 10, "a classic"); err != nil {
		t.Fatalf("UpdateReview error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReviewsNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	newer := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	older := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "username", "song_name", "artist", "title", "score", "review_text", "image", "created_at", "updated_at",
	}).
		AddRow(int64(2), "bob", "Roygbiv", "Boards of Canada", "Roygbiv", 8, "warm", "", newer, newer).
		AddRow(int64(1), "alice", "Teardrop", "Massive Attack", "Teardrop", 9, "gorgeous", "", older, older)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
		WillReturnRows(rows)

	reviews, err := s.Reviews(context.Background())
	if err != nil {
		t.Fatalf("Reviews error: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].SongName != "Roygbiv" || reviews[1].SongName != "Teardrop" {
		t.Fatalf("unexpected order: %q then %q", reviews[0].SongName, reviews[1].SongName)
	}
}

func TestReviewsBySong(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "username", "song_name", "artist", "title", "score", "review_text", "image", "created_at", "updated_at",
	}).
		AddRow(int64(1), "alice", "Teardrop", "Massive Attack", "Teardrop", 9, "gorgeous", "", now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE song_name = $1`)).
		WithArgs("Teardrop").
		WillReturnRows(rows)

	reviews, err := s.ReviewsBySong(context.Background(), "Teardrop")
	if err != nil {
		t.Fatalf("ReviewsBySong error: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Username != "alice" {
		t.Fatalf("unexpected reviews: %+v", reviews)
	}
}

func TestDeleteReviewNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM reviews`)).
		WithArgs("alice", "Nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = s.DeleteReview(context.Background(), "alice", "Nope")
	if !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestDeleteReviewSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM reviews`)).
		WithArgs("alice", "Teardrop").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.DeleteReview(context.Background(), "alice", "Teardrop"); err != nil {
		t.Fatalf("DeleteReview error: %v", err)
	}
}
