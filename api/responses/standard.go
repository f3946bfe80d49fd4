package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aidin1998/creatorhub/pkg/errors"
)

// ContentTypeProblem is the media type of every error body
const ContentTypeProblem = "application/problem+json"

// TraceIDKey is the gin context key holding the request trace id
const TraceIDKey = "trace_id"

// OK sends data as a 200 JSON body
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends data as a 201 JSON body
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error sends err as an RFC 7807 problem. Errors that are neither an
// *errors.Error nor a *errors.ProblemDetails become a generic 500.
func Error(c *gin.Context, err error) {
	Problem(c, ToProblemDetails(err, c.Request.URL.Path))
}

// Problem writes problemDetails with the request trace id attached
func Problem(c *gin.Context, problemDetails *errors.ProblemDetails) {
	if problemDetails.TraceID == "" {
		if traceID := getTraceID(c); traceID != "" {
			problemDetails.WithTraceID(traceID)
		}
	}

	c.Header("Content-Type", ContentTypeProblem)
	c.JSON(problemDetails.Status, problemDetails)
}

// ToProblemDetails converts any error to a problem for instance
func ToProblemDetails(err error, instance string) *errors.ProblemDetails {
	var pd *errors.ProblemDetails
	if errors.As(err, &pd) {
		if pd.Instance == "" {
			pd.Instance = instance
		}
		return pd
	}

	var appErr *errors.Error
	if errors.As(err, &appErr) {
		return appErr.ToProblemDetails(instance)
	}

	return errors.NewInternalError("Internal server error", instance)
}

// BadRequest sends a 400 problem
func BadRequest(c *gin.Context, detail string) {
	Problem(c, errors.NewValidationError(detail, c.Request.URL.Path))
}

// ServiceUnavailable sends a 503 problem
func ServiceUnavailable(c *gin.Context, detail string) {
	Problem(c, errors.NewServiceUnavailableError(detail, c.Request.URL.Path))
}

// getTraceID extracts trace ID from context
func getTraceID(c *gin.Context) string {
	if traceID, exists := c.Get(TraceIDKey); exists {
		if id, ok := traceID.(string); ok {
			return id
		}
	}

	return c.GetHeader("X-Trace-ID")
}
