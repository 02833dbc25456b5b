package domain

import (
	"github.com/google/wire"

	"github.com/b-d055/bedrock-agents-webscraper-go/internal/domain/agent"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/domain/scrape"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/domain/search"
)

// DomainProvider provides all domain services
var DomainProvider = wire.NewSet(
	scrape.NewService,
	search.NewService,
	agent.NewHandler,
)
