package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thrivetrack/backend/internal/resources"
)

// ResourcesHandler serves the support resources catalogue
type ResourcesHandler struct {
	catalog *resources.Catalog
}

// NewResourcesHandler creates a new resources handler
func NewResourcesHandler(catalog *resources.Catalog) *ResourcesHandler {
	return &ResourcesHandler{catalog: catalog}
}

// GetResources handles GET /api/v1/resources
func (h *ResourcesHandler) GetResources(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}
