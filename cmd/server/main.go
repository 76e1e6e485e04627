package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"outreach/internal/config"
	"outreach/internal/logger"
	"outreach/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := config.New()

	log := logger.New()
	defer log.Sync()
	zap.ReplaceGlobals(log)

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatal("failed to create server", zap.Error(err))
	}
	defer srv.Close()

	if err := srv.Run(); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
