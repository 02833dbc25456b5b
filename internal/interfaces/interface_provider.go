package interfaces

import (
	"github.com/google/wire"

	"github.com/b-d055/bedrock-agents-webscraper-go/internal/interfaces/httpserver"
)

// InterfacesProvider provides all interface layer dependencies
var InterfacesProvider = wire.NewSet(
	httpserver.NewHTTPServer,
)
