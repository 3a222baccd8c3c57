package apierror

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the MIME type for RFC 9457 Problem Details.
const ContentTypeProblemJSON = "application/problem+json"

// SnapshotUnavailableMessage is shown in place of the insights screen
// when mood history cannot be loaded.
const SnapshotUnavailableMessage = "Sorry, we couldn't load your mood insights right now. Please try again later."

// WriteProblem writes a ProblemDetails response and aborts the chain.
// Retry-After is set whenever the problem carries RetryAfter.
func WriteProblem(c *gin.Context, problem *ProblemDetails) {
	if problem.Instance == "" && c.Request != nil {
		problem.Instance = c.Request.URL.Path
	}
	if problem.RetryAfter != nil {
		c.Header("Retry-After", strconv.Itoa(*problem.RetryAfter))
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.AbortWithStatusJSON(problem.Status, problem)
}

// GetRequestID extracts the request ID from the gin context, falling
// back to the X-Request-ID header.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return c.GetHeader("X-Request-ID")
}

// NewValidationError creates a 400 response listing every failed field.
func NewValidationError(requestID string, errors []FieldError) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeValidation,
		Title:       TitleValidation,
		Status:      http.StatusBadRequest,
		Detail:      "One or more fields failed validation",
		RequestID:   requestID,
		UserMessage: "Please check your check-in and try again",
		Errors:      errors,
	}
}

// NewInvalidRangeError creates a 400 response for an unknown range value.
func NewInvalidRangeError(requestID, value string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInvalidRange,
		Title:       TitleInvalidRange,
		Status:      http.StatusBadRequest,
		Detail:      fmt.Sprintf("range %q is not one of week, month, all", value),
		RequestID:   requestID,
		UserMessage: "Please choose This week, This month or All time",
		Errors: []FieldError{
			{Field: "range", Message: "must be week, month or all", Code: "invalid_range"},
		},
	}
}

// NewBadRequestError creates a 400 response for malformed requests.
func NewBadRequestError(requestID, detail, userMessage string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeBadRequest,
		Title:       TitleBadRequest,
		Status:      http.StatusBadRequest,
		Detail:      detail,
		RequestID:   requestID,
		UserMessage: userMessage,
	}
}

// NewNotFoundError creates a 404 response.
func NewNotFoundError(requestID, resource, id string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeNotFound,
		Title:       TitleNotFound,
		Status:      http.StatusNotFound,
		Detail:      fmt.Sprintf("%s with ID '%s' was not found", resource, id),
		RequestID:   requestID,
		UserMessage: fmt.Sprintf("The requested %s could not be found", resource),
	}
}

// NewVisitNotFoundError creates a 404 response for an unknown or expired
// insights visit. The client should start a new visit and retry.
func NewVisitNotFoundError(requestID, visitID string) *ProblemDetails {
	p := NewNotFoundError(requestID, "Visit", visitID)
	p.UserMessage = "Your insights session has expired. Please reopen your mood insights."
	p.Action = ActionStartVisit
	return p
}

// NewRateLimitError creates a 429 response.
func NewRateLimitError(requestID string, retryAfter int) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeRateLimit,
		Title:       TitleRateLimit,
		Status:      http.StatusTooManyRequests,
		Detail:      fmt.Sprintf("Rate limit exceeded. Please retry after %d seconds", retryAfter),
		RequestID:   requestID,
		UserMessage: "Too many requests. Please wait before trying again.",
		RetryAfter:  &retryAfter,
	}
}

// NewInternalError creates a 500 response. Internal details are never
// sent to the client; log them server-side.
func NewInternalError(requestID string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInternal,
		Title:       TitleInternal,
		Status:      http.StatusInternalServerError,
		Detail:      "An unexpected error occurred",
		RequestID:   requestID,
		UserMessage: "Something went wrong. Please try again later.",
	}
}

// NewSnapshotUnavailableError creates a 503 response used when the mood
// entry store cannot be read. No partial insights accompany it.
func NewSnapshotUnavailableError(requestID string, retryAfter int) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeSnapshotUnavailable,
		Title:       TitleSnapshotUnavailable,
		Status:      http.StatusServiceUnavailable,
		Detail:      "could not load mood entries",
		RequestID:   requestID,
		UserMessage: SnapshotUnavailableMessage,
		RetryAfter:  &retryAfter,
		Action:      ActionRetry,
	}
}
