package songs

import (
	"context"

	"songfinder/internal/store"
)

// Store defines the persistence hooks for saved-song workflows.
type Store interface {
	AddSong(ctx context.Context, song store.SavedSong) (int64, error)
	SongsByUser(ctx context.Context, username string) ([]store.SavedSong, error)
	DeleteSong(ctx context.Context, username, songName string) error
	DeleteAllSongs(ctx context.Context, username string) (int64, error)
}

// Service exposes saved-song operations.
type Service interface {
	Add(ctx context.Context, song store.SavedSong) (int64, error)
	ListByUser(ctx context.Context, username string) ([]store.SavedSong, error)
	Delete(ctx context.Context, username, songName string) error
	DeleteAll(ctx context.Context, username string) (int64, error)
}

type service struct {
	store Store
}

// New constructs a songs Service backed by the given Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Add(ctx context.Context, song store.SavedSong) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.store.AddSong(ctx, song)
}

func (s *service) ListByUser(ctx context.Context, username string) ([]store.SavedSong, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SongsByUser(ctx, username)
}

func (s *service) Delete(ctx context.Context, username, songName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteSong(ctx, username, songName)
}

func (s *service) DeleteAll(ctx context.Context, username string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.store.DeleteAllSongs(ctx, username)
}
