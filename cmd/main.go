// Package main is the entry point for the bagging-service application.
package main

import (
	"github.com/rs/zerolog/log"
	"github.com/threadline/bagging-service/config"
	"github.com/threadline/bagging-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, cleanup := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)
	server.OnShutdown(cleanup)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
