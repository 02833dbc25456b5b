package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/b-d055/bedrock-agents-webscraper-go/internal/domain/agent"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/infrastructure/metrics"
	"github.com/b-d055/bedrock-agents-webscraper-go/internal/interfaces/httpserver/responses"
)

// InvokeRoute serves action-group invocations.
type InvokeRoute struct {
	handler *agent.Handler
}

// NewInvokeRoute creates the invocation route.
func NewInvokeRoute(handler *agent.Handler) *InvokeRoute {
	return &InvokeRoute{handler: handler}
}

// RegisterRouter mounts the route on the given group.
func (route *InvokeRoute) RegisterRouter(router *gin.RouterGroup) {
	router.POST("/invoke", route.Invoke)
}

// Invoke handles one action-group invocation.
// @Summary Handle an agent action-group invocation
// @Description Dispatches an invocation to one of the two functions and returns the fixed response envelope.
// @Description
// @Description **Available functions:**
// @Description - `scrape`: fetch a web page and return its readable text (params: url)
// @Description - `google_search`: search the web and return up to 10 title/link results (params: query)
// @Description
// @Description Handler-detected failures (unknown function, missing parameter, no results) still
// @Description return 200 with `responseState: FAILURE` inside the envelope. Upstream faults return 502.
// @Tags Agent API
// @Accept json
// @Produce json
// @Param request body agent.Invocation true "Action-group invocation"
// @Success 200 {object} agent.Response "Response envelope"
// @Failure 400 {object} responses.ErrorResponse "Invocation body is not valid JSON"
// @Failure 502 {object} responses.ErrorResponse "Upstream fetch or search fault"
// @Router /v1/invoke [post]
func (route *InvokeRoute) Invoke(c *gin.Context) {
	startTime := time.Now()

	var inv agent.Invocation
	if err := c.ShouldBindJSON(&inv); err != nil {
		responses.Error(c, http.StatusBadRequest, "invalid_invocation", err)
		return
	}

	log.Info().
		Str("function", inv.Function).
		Str("action_group", inv.ActionGroup).
		Str("session_id", inv.SessionID).
		Msg("invocation received")

	resp, err := route.handler.Handle(c.Request.Context(), &inv)
	if err != nil {
		log.Error().
			Err(err).
			Str("function", inv.Function).
			Msg("invocation fault")
		metrics.RecordInvocation(inv.Function, "fault", time.Since(startTime).Seconds())
		responses.Error(c, http.StatusBadGateway, "upstream_fault", err)
		return
	}

	outcome := "success"
	if resp.Response.FunctionResponse.ResponseState == agent.ResponseStateFailure {
		outcome = "failure"
	}
	metrics.RecordInvocation(inv.Function, outcome, time.Since(startTime).Seconds())

	log.Info().
		Str("function", inv.Function).
		Str("outcome", outcome).
		Dur("duration", time.Since(startTime)).
		Msg("invocation completed")

	c.JSON(http.StatusOK, resp)
}
