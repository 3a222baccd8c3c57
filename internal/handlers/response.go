package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/thrivetrack/backend/internal/apierror"
	"github.com/thrivetrack/backend/internal/logger"
	"github.com/thrivetrack/backend/internal/service"
)

// snapshotRetryAfter is the Retry-After hint, in seconds, when mood history
// cannot be loaded
const snapshotRetryAfter = 30

// currentUserID returns the user resolved by middleware.UserScope
func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

// writeServiceError maps service errors onto problem details. Unexpected
// errors are logged and hidden from the client.
func writeServiceError(c *gin.Context, err error, resource, id string) {
	requestID := apierror.GetRequestID(c)
	log := logger.Ctx(c.Request.Context())

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make([]apierror.FieldError, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, apierror.FieldError{Field: f.Field, Message: f.Message, Code: f.Code})
		}
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fields))
	case errors.Is(err, service.ErrInvalidRange):
		apierror.WriteProblem(c, apierror.NewInvalidRangeError(requestID, c.Query("range")))
	case errors.Is(err, service.ErrVisitNotFound):
		apierror.WriteProblem(c, apierror.NewVisitNotFoundError(requestID, id))
	case errors.Is(err, service.ErrNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, resource, id))
	case errors.Is(err, service.ErrSnapshotUnavailable):
		log.Warn("mood history unavailable", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewSnapshotUnavailableError(requestID, snapshotRetryAfter))
	default:
		log.Error("request failed", logger.Err(err), logger.String("resource", resource))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}
