package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"songfinder/internal/logging"
	"songfinder/internal/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	db, err := openDatabase(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	if err := ensureSchema(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("ensure schema")
	}

	handler := newHTTPHandler(cfg, store.New(db))

	log.Info().Str("addr", cfg.Addr).Str("image_strategy", cfg.ImageStrategy).Msg("songfinder API listening")
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
