package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/themisatsal/hilla-mobile-sub000/services"
)

type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

// GetTrends returns per-day rows for an arbitrary range, defaulting to the
// current month.
func (h *AnalyticsController) GetTrends(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)

	from := c.DefaultQuery("from", first.Format("2006-01-02"))
	to := c.DefaultQuery("to", last.Format("2006-01-02"))

	out, err := h.analytics.Trends(c.Request.Context(), userID, from, to)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsController) GetWeeklyOverview(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	weekStart := time.Now()
	if v := c.Query("week_start"); v != "" {
		ws, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week_start"})
			return
		}
		weekStart = ws
	}

	out, err := h.analytics.WeeklyOverview(c.Request.Context(), userID, weekStart)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
