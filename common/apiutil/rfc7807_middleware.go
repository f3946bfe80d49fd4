package apiutil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aidin1998/creatorhub/api/responses"
	"github.com/Aidin1998/creatorhub/pkg/errors"
)

// MalformedBodyDetail is the problem detail for bodies that fail to decode.
// The decoder message names Go types and stays in the logs.
const MalformedBodyDetail = "malformed request body"

// RFC7807ErrorMiddleware renders the last error a handler attached with
// c.Error as an RFC 7807 problem and logs it.
func RFC7807ErrorMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last()
		instance := c.Request.URL.Path

		var problemDetails *errors.ProblemDetails
		if err.IsType(gin.ErrorTypeBind) {
			problemDetails = errors.NewValidationError(MalformedBodyDetail, instance)
		} else {
			problemDetails = responses.ToProblemDetails(err.Err, instance)
		}

		fields := []zap.Field{
			zap.String("path", instance),
			zap.String("method", c.Request.Method),
			zap.Int("status", problemDetails.Status),
			zap.String("trace_id", GetTraceID(c)),
			zap.Error(err.Err),
		}
		if problemDetails.Status >= http.StatusInternalServerError {
			logger.Error("Request failed", fields...)
		} else {
			logger.Warn("Request rejected", fields...)
		}

		responses.Problem(c, problemDetails)
		c.Abort()
	}
}

// GetTraceID extracts trace ID from context
func GetTraceID(c *gin.Context) string {
	if traceID, exists := c.Get(responses.TraceIDKey); exists {
		if id, ok := traceID.(string); ok {
			return id
		}
	}

	return c.GetHeader(TraceIDHeader)
}
