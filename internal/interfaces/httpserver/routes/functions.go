package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/b-d055/bedrock-agents-webscraper-go/internal/infrastructure/funcschema"
)

// FunctionsRoute exposes the declared function schema.
type FunctionsRoute struct {
	schema *funcschema.Schema
}

// NewFunctionsRoute creates the schema route.
func NewFunctionsRoute(schema *funcschema.Schema) *FunctionsRoute {
	return &FunctionsRoute{schema: schema}
}

// RegisterRouter mounts the route on the given group.
func (route *FunctionsRoute) RegisterRouter(router *gin.RouterGroup) {
	router.GET("/functions", route.List)
}

// List returns the function declarations for agent registration.
// @Summary List declared agent functions
// @Description Returns the function declarations this service implements, as registered with the agent action group.
// @Tags Agent API
// @Produce json
// @Success 200 {object} funcschema.Schema "Function declarations"
// @Router /v1/functions [get]
func (route *FunctionsRoute) List(c *gin.Context) {
	c.JSON(http.StatusOK, route.schema)
}
