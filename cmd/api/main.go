package main

import (
	"context"
	"flag"

	"github.com/grupoidi/deptoweb/internal/bootstrap"
	"github.com/grupoidi/deptoweb/internal/config"
	"github.com/grupoidi/deptoweb/internal/pkg/logger"
	"github.com/grupoidi/deptoweb/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	app, err := bootstrap.NewApplication(context.Background(), cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to start application")
	}
	defer app.Close()

	if err := server.Run(app); err != nil {
		logger.Fatal().Err(err).Msg("Server error")
	}
}
