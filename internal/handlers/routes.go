package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the mood API on api (normally /api/v1)
func RegisterRoutes(api *gin.RouterGroup, entries *MoodEntryHandler, insights *MoodInsightsHandler, res *ResourcesHandler) {
	moodEntries := api.Group("/mood-entries")
	{
		moodEntries.POST("", entries.CreateEntry)
		moodEntries.GET("", entries.ListEntries)
		moodEntries.PATCH("/:id", entries.UpdateEntry)
		moodEntries.DELETE("/:id", entries.DeleteEntry)
	}

	moodInsights := api.Group("/mood-insights")
	{
		moodInsights.GET("", insights.GetInsights)
		moodInsights.POST("/visits", insights.StartVisit)
		moodInsights.DELETE("/visits/:id", insights.EndVisit)
	}

	api.GET("/resources", res.GetResources)
}
