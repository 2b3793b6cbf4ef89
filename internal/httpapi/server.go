package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"songfinder/internal/app/search"
	"songfinder/internal/store"
)

// SongService captures the saved-song operations needed by the HTTP handlers.
type SongService interface {
	Add(ctx context.Context, song store.SavedSong) (int64, error)
	ListByUser(ctx context.Context, username string) ([]store.SavedSong, error)
	Delete(ctx context.Context, username, songName string) error
	DeleteAll(ctx context.Context, username string) (int64, error)
}

// ReviewService captures review workflows.
type ReviewService interface {
	Upsert(ctx context.Context, review store.Review) error
	Update(ctx context.Context, username, songName string, score int, text string) error
	ListAll(ctx context.Context) ([]store.Review, error)
	ListBySong(ctx context.Context, songName string) ([]store.Review, error)
	Delete(ctx context.Context, username, songName string) error
}

// SearchService provides the aggregated external track search.
type SearchService interface {
	Search(ctx context.Context, query string) ([]search.Result, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	songs   SongService
	reviews ReviewService
	search  SearchService
}

// New configures a Server with the given services.
func New(songs SongService, reviews ReviewService, searchSvc SearchService) *Server {
	return &Server{
		songs:   songs,
		reviews: reviews,
		search:  searchSvc,
	}
}

// Routes exposes the HTTP handlers.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/songs", s.handleAddSong)
	mux.HandleFunc("GET /api/songs/{username}", s.handleListSongs)
	mux.HandleFunc("DELETE /api/songs/{username}", s.handleDeleteAllSongs)
	mux.HandleFunc("DELETE /api/songs/{username}/{song_name}", s.handleDeleteSong)

	mux.HandleFunc("POST /api/search", s.handleSearch)

	mux.HandleFunc("POST /api/reviews", s.handleCreateReview)
	mux.HandleFunc("GET /api/reviews", s.handleListReviews)
	mux.HandleFunc("GET /api/reviews/{song_name}", s.handleListSongReviews)
	mux.HandleFunc("PUT /api/reviews/{username}/{song_name}", s.handleUpdateReview)
	mux.HandleFunc("DELETE /api/reviews/{username}/{song_name}", s.handleDeleteReview)

	return mux
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Hello World"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
