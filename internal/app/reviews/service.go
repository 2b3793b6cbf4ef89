package reviews

import (
	"context"

	"songfinder/internal/store"
)

// Store defines the persistence hooks for review workflows.
type Store interface {
	UpsertReview(ctx context.Context, review store.Review) error
	UpdateReview(ctx context.Context, username, songName string, score int, text string) error
	Reviews(ctx context.Context) ([]store.Review, error)
	ReviewsBySong(ctx context.Context, songName string) ([]store.Review, error)
	DeleteReview(ctx context.Context, username, songName string) error
}

// Service exposes review operations.
type Service interface {
	Upsert(ctx context.Context, review store.Review) error
	Update(ctx context.Context, username, songName string, score int, text string) error
	ListAll(ctx context.Context) ([]store.Review, error)
	ListBySong(ctx context.Context, songName string) ([]store.Review, error)
	Delete(ctx context.Context, username, songName string) error
}

type service struct {
	store Store
}

// New constructs a reviews Service backed by the given Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Upsert(ctx context.Context, review store.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UpsertReview(ctx, review)
}

func (s *service) Update(ctx context.Context, username, songName string, score int, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UpdateReview(ctx, username, songName, score, text)
}

func (s *service) ListAll(ctx context.Context) ([]store.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Reviews(ctx)
}

func (s *service) ListBySong(ctx context.Context, songName string) ([]store.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ReviewsBySong(ctx, songName)
}

func (s *service) Delete(ctx context.Context, username, songName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteReview(ctx, username, songName)
}
