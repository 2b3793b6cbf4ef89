package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"songfinder/internal/store"
)

type addSongRequest struct {
	Song      string `json:"song"`
	Username  string `json:"username"`
	Artist    string `json:"artist"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Listeners int64  `json:"listeners"`
	URL       string `json:"url"`
}

type addSongResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
	var req addSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	id, err := s.songs.Add(r.Context(), store.SavedSong{
		Song:      req.Song,
		Username:  req.Username,
		Artist:    req.Artist,
		Title:     req.Title,
		Image:     req.Image,
		Listeners: req.Listeners,
		URL:       req.URL,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSongExists):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "song already saved"})
		case errors.Is(err, store.ErrInvalidSong):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusCreated, addSongResponse{
		Message: fmt.Sprintf("Song '%s' added successfully!", req.Song),
		ID:      id,
	})
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := s.songs.ListByUser(r.Context(), r.PathValue("username"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if songs == nil {
		songs = []store.SavedSong{}
	}

	writeJSON(w, http.StatusOK, struct {
		Songs []store.SavedSong `json:"songs"`
	}{Songs: songs})
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	songName := r.PathValue("song_name")

	if err := s.songs.Delete(r.Context(), username, songName); err != nil {
		if errors.Is(err, store.ErrSongNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "song not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Song '%s' deleted successfully", songName),
	})
}

func (s *Server) handleDeleteAllSongs(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	deleted, err := s.songs.DeleteAll(r.Context(), username)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message      string `json:"message"`
		DeletedCount int64  `json:"deleted_count"`
	}{
		Message:      fmt.Sprintf("Deleted all songs for user '%s'", username),
		DeletedCount: deleted,
	})
}
