package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"songfinder/internal/app/search"
	"songfinder/internal/musicapi"
)

type searchRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query is required"})
		return
	}

	results, err := s.search.Search(r.Context(), req.Query)
	if err != nil {
		switch {
		case errors.Is(err, musicapi.ErrUpstream):
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		case errors.Is(err, musicapi.ErrUnreachable):
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Songs []search.Result `json:"songs"`
	}{Songs: results})
}
