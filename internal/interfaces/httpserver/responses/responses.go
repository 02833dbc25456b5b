package responses

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the service-level error shape used when a request never
// produced an envelope: unparseable bodies and propagated upstream faults.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// Error writes an ErrorResponse with the given status and aborts the chain.
func Error(c *gin.Context, status int, code string, err error) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:  code,
		Error: err.Error(),
	})
}
