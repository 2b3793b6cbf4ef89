package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"songfinder/internal/store"
)

type createReviewRequest struct {
	SongName   string `json:"song_name"`
	Artist     string `json:"artist"`
	Title      string `json:"title"`
	Username   string `json:"username"`
	Score      int    `json:"score"`
	ReviewText string `json:"review_text"`
	Image      string `json:"image"`
}

type updateReviewRequest struct {
	Score      int    `json:"score"`
	ReviewText string `json:"review_text"`
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	err := s.reviews.Upsert(r.Context(), store.Review{
		SongName:   req.SongName,
		Artist:     req.Artist,
		Title:      req.Title,
		Username:   req.Username,
		Score:      req.Score,
		ReviewText: req.ReviewText,
		Image:      req.Image,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSongNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "song not in user's saved list"})
		case errors.Is(err, store.ErrInvalidReview):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Review saved successfully"})
}

func (s *Server) handleUpdateReview(w http.ResponseWriter, r *http.Request) {
	var req updateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	err := s.reviews.Update(r.Context(), r.PathValue("username"), r.PathValue("song_name"), req.Score, req.ReviewText)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrReviewNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "review not found"})
		case errors.Is(err, store.ErrInvalidReview):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Review updated successfully"})
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.reviews.ListAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if reviews == nil {
		reviews = []store.Review{}
	}

	writeJSON(w, http.StatusOK, struct {
		Reviews []store.Review `json:"reviews"`
	}{Reviews: reviews})
}

func (s *Server) handleListSongReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.reviews.ListBySong(r.Context(), r.PathValue("song_name"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if reviews == nil {
		reviews = []store.Review{}
	}

	writeJSON(w, http.StatusOK, struct {
		Reviews []store.Review `json:"reviews"`
	}{Reviews: reviews})
}

func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	err := s.reviews.Delete(r.Context(), r.PathValue("username"), r.PathValue("song_name"))
	if err != nil {
		if errors.Is(err, store.ErrReviewNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "review not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Review deleted successfully"})
}
