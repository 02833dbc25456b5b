package infrastructure

import (
	"time"

	"github.com/google/wire"
	"github.com/rs/zerolog/log"

	"github.com/b-d055/bedrock-agents-webscraper-go/internal/domain/scrape"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/domain/search"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/infrastructure/config"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/infrastructure/funcschema"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/infrastructure/googlesearch"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/infrastructure/webpage"
)

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Page fetcher
	ProvidePageFetcher,

	// Search client
	ProvideSearchClient,

	// Function schema
	ProvideFunctionSchema,
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.LoadConfig()
}

// ProvidePageFetcher provides the fetcher backing the scrape service
func ProvidePageFetcher(cfg *config.Config) scrape.PageFetcher {
	return webpage.NewClient(time.Duration(cfg.FetchTimeout) * time.Second)
}

// ProvideSearchClient provides the search client
func ProvideSearchClient(cfg *config.Config) search.Client {
	return googlesearch.NewClient(googlesearch.Config{
		APIKey:   cfg.SearchAPIKey,
		EngineID: cfg.SearchEngineID,
		BaseURL:  cfg.SearchBaseURL,
		Timeout:  time.Duration(cfg.SearchTimeout) * time.Second,
	})
}

// ProvideFunctionSchema loads the action-group function schema
func ProvideFunctionSchema(cfg *config.Config) *funcschema.Schema {
	schema, err := funcschema.Load(cfg.FunctionsFile)
	if err != nil {
		// Serve an empty schema if the file is not present
		log.Warn().Err(err).Str("path", cfg.FunctionsFile).Msg("function schema not loaded")
		return &funcschema.Schema{}
	}
	return schema
}
