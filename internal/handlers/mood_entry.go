package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thrivetrack/backend/internal/apierror"
	"github.com/thrivetrack/backend/internal/models"
	"github.com/thrivetrack/backend/internal/service"
)

const moodEntryResource = "Mood entry"

// MoodEntryHandler handles mood check-in HTTP requests
type MoodEntryHandler struct {
	entryService service.MoodEntryService
}

// NewMoodEntryHandler creates a new mood entry handler
func NewMoodEntryHandler(entryService service.MoodEntryService) *MoodEntryHandler {
	return &MoodEntryHandler{entryService: entryService}
}

// CreateEntry handles POST /api/v1/mood-entries
func (h *MoodEntryHandler) CreateEntry(c *gin.Context) {
	var req models.CreateMoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c), err.Error(), "Invalid JSON format"))
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		writeServiceError(c, err, moodEntryResource, "")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListEntries handles GET /api/v1/mood-entries
func (h *MoodEntryHandler) ListEntries(c *gin.Context) {
	entries, err := h.entryService.ListEntries(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeServiceError(c, err, moodEntryResource, "")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// UpdateEntry handles PATCH /api/v1/mood-entries/:id
func (h *MoodEntryHandler) UpdateEntry(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateMoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c), err.Error(), "Invalid JSON format"))
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), currentUserID(c), id, &req)
	if err != nil {
		writeServiceError(c, err, moodEntryResource, id)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /api/v1/mood-entries/:id
func (h *MoodEntryHandler) DeleteEntry(c *gin.Context) {
	id := c.Param("id")

	if err := h.entryService.DeleteEntry(c.Request.Context(), currentUserID(c), id); err != nil {
		writeServiceError(c, err, moodEntryResource, id)
		return
	}

	c.Status(http.StatusNoContent)
}
