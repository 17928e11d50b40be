package main

import (
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

//	@title			Hotel API
//	@version		1.0
//	@description	Room inventory and guest registry.
//	@BasePath		/

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	defer cleanup()

	if err = http.Serve(); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped unexpectedly")
	}
}
