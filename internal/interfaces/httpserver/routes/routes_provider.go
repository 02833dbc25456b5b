package routes

import (
	"github.com/google/wire"
)

// RoutesProvider provides all route dependencies
var RoutesProvider = wire.NewSet(
	NewInvokeRoute,
	NewFunctionsRoute,
)
