//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/b-d055/bedrock-agents-webscraper-go/internal/domain"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/infrastructure"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/interfaces"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/interfaces/httpserver/routes"
)

func CreateApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		domain.DomainProvider,
		infrastructure.InfrastructureProvider,
		routes.RoutesProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
