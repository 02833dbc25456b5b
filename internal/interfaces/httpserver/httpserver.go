package httpserver

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/b-d055/bedrock-agents-webscraper-go/internal/infrastructure/config"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/interfaces/httpserver/middlewares"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/interfaces/httpserver/routes"
)

type HTTPServer struct {
	router         *gin.Engine
	config         *config.Config
	invokeRoute    *routes.InvokeRoute
	functionsRoute *routes.FunctionsRoute
}

func NewHTTPServer(
	cfg *config.Config,
	invokeRoute *routes.InvokeRoute,
	functionsRoute *routes.FunctionsRoute,
) *HTTPServer {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger())
	router.Use(middlewares.CORS())
	router.Use(middlewares.MetricsRecorder())

	return &HTTPServer{
		router:         router,
		config:         cfg,
		invokeRoute:    invokeRoute,
		functionsRoute: functionsRoute,
	}
}

func (s *HTTPServer) setupRoutes() {
	// Health check endpoints
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "webscraper"})
	})

	s.router.GET("/readyz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ready", "service": "webscraper"})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register agent routes
	v1 := s.router.Group("/v1")
	s.invokeRoute.RegisterRouter(v1)
	s.functionsRoute.RegisterRouter(v1)
}

func (s *HTTPServer) Run() error {
	s.setupRoutes()
	addr := fmt.Sprintf(":%s", s.config.HTTPPort)
	return s.router.Run(addr)
}
