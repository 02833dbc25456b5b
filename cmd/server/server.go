package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/b-d055/bedrock-agents-webscraper-go/internal/infrastructure/config"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/infrastructure/logger"
	_ "github.com/b-d055/bedrock-agents-webscraper-go/internal/infrastructure/metrics" // Register Prometheus metrics
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/interfaces/httpserver"
)

type Application struct {
	httpServer *httpserver.HTTPServer
	config     *config.Config
}

func init() {
	// Initialize logger with default settings
	logger.Init("info", "json")
}

// @title Bedrock Agents Web Scraper Service
// @version 1.0
// @description Action-group request handler providing web page scraping and Google Custom Search for Bedrock agents.
// @contact.name b-d055
// @contact.url https://github.com/b-d055/bedrock-agents-webscraper-go
// @BasePath /
func (app *Application) Start(ctx context.Context) error {
	log.Info().Str("address", fmt.Sprintf(":%s", app.config.HTTPPort)).Msg("Server listening")
	return app.httpServer.Run()
}

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Re-initialize logger with config settings
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("http_port", cfg.HTTPPort).
		Str("log_level", cfg.LogLevel).
		Msg("Starting web scraper service")

	// Create application with dependency injection
	application, err := CreateApplication(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create application")
	}

	// Start application
	if err := application.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
