package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"shelftrack-backend/internal/config"
	"shelftrack-backend/pkg/container"
	"shelftrack-backend/pkg/logger"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Init(cfg.App.Environment)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	c, err := container.New(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build container")
	}
	defer c.Cleanup()

	router := setupRouter(c)

	if err := serve(c, router); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
