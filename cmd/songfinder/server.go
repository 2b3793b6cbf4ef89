package main

import (
	"net/http"
	"strings"

	"songfinder/internal/app/reviews"
	"songfinder/internal/app/search"
	"songfinder/internal/app/songs"
	"songfinder/internal/httpapi"
	"songfinder/internal/musicapi"
	"songfinder/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	songSvc := songs.New(dataStore)
	reviewSvc := reviews.New(dataStore)

	searcher := musicapi.NewLastFMClient(cfg.LastFMAPIKey)
	searchSvc := search.New(searcher, newImageResolver(cfg))

	routes := httpapi.New(songSvc, reviewSvc, searchSvc).Routes()

	return withCORS(cfg.AllowedOrigins, httpapi.RequestLogging(httpapi.Recovery(routes)))
}

func newImageResolver(cfg Config) musicapi.ImageResolver {
	if cfg.ImageStrategy == strategyEmbedded {
		return musicapi.EmbeddedImageResolver{}
	}
	return musicapi.NewCoverArtResolver()
}

func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := func(origin string) bool {
		if len(allowedOrigins) == 0 || origin == "" {
			return false
		}
		for _, o := range allowedOrigins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowed := originAllowed(origin)
		if allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		// Only a preflight from an allowed origin is answered here; OPTIONS
		// requests without a CORS origin fall through to the mux.
		if r.Method == http.MethodOptions && allowed {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
