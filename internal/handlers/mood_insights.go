package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thrivetrack/backend/internal/logger"
	"github.com/thrivetrack/backend/internal/service"
)

// MoodInsightsHandler serves the mood insights screen
type MoodInsightsHandler struct {
	insightsService service.MoodInsightsService
}

// NewMoodInsightsHandler creates a new mood insights handler
func NewMoodInsightsHandler(insightsService service.MoodInsightsService) *MoodInsightsHandler {
	return &MoodInsightsHandler{insightsService: insightsService}
}

// GetInsights handles GET /api/v1/mood-insights?range=week|month|all&visit_id=
//
// Visits expire insights.visit_ttl after they start; reads do not extend
// them. An unknown or expired visit_id gets a 404 problem with action
// "start_visit", and the client should POST a new visit and repeat the call.
func (h *MoodInsightsHandler) GetInsights(c *gin.Context) {
	visitID := c.Query("visit_id")
	ctx := c.Request.Context()
	if visitID != "" {
		ctx = logger.WithVisitID(ctx, visitID)
	}

	report, err := h.insightsService.GetInsights(ctx, currentUserID(c), c.Query("range"), visitID)
	if err != nil {
		writeServiceError(c, err, "Mood insights", visitID)
		return
	}

	c.JSON(http.StatusOK, report)
}

// StartVisit handles POST /api/v1/mood-insights/visits
func (h *MoodInsightsHandler) StartVisit(c *gin.Context) {
	visit, err := h.insightsService.StartVisit(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeServiceError(c, err, "Visit", "")
		return
	}

	c.JSON(http.StatusCreated, visit)
}

// EndVisit handles DELETE /api/v1/mood-insights/visits/:id
func (h *MoodInsightsHandler) EndVisit(c *gin.Context) {
	id := c.Param("id")
	if err := h.insightsService.EndVisit(c.Request.Context(), currentUserID(c), id); err != nil {
		writeServiceError(c, err, "Visit", id)
		return
	}

	c.Status(http.StatusNoContent)
}
