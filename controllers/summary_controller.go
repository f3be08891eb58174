package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/themisatsal/hilla-mobile-sub000/services"
	"github.com/themisatsal/hilla-mobile-sub000/utils"
)

type SummaryController struct {
	summaries *services.DailyLogService
}

func NewSummaryController(summaries *services.DailyLogService) *SummaryController {
	return &SummaryController{summaries: summaries}
}

// GetSummary is the lazy read path: absent days are materialized on the spot
// and never conflict.
func (h *SummaryController) GetSummary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	date, ok := dateParam(c)
	if !ok {
		return
	}

	log, err := h.summaries.GetOrCreateDailySummary(c.Request.Context(), userID, date)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// CreateSummary is the explicit create path: an existing log for the date is
// a 409, unlike the lazy read.
func (h *SummaryController) CreateSummary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Date string `json:"date" binding:"required"`
		services.SummaryPatch
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	log, err := h.summaries.CreateDailySummary(c.Request.Context(), userID, req.Date, req.SummaryPatch)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (h *SummaryController) UpdateSummary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	date, ok := dateParam(c)
	if !ok {
		return
	}

	var patch services.SummaryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.summaries.UpdateSummary(c.Request.Context(), userID, date, patch)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (h *SummaryController) RecomputeSummary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	date, ok := dateParam(c)
	if !ok {
		return
	}

	log, err := h.summaries.RecomputeSummary(c.Request.Context(), userID, date)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (h *SummaryController) DeleteSummary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	date, ok := dateParam(c)
	if !ok {
		return
	}

	if err := h.summaries.DeleteSummary(c.Request.Context(), userID, date); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetWarnings flags nutrients whose daily total crossed a tolerable upper
// limit. The day is materialized first if needed, like the lazy read.
func (h *SummaryController) GetWarnings(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	date, ok := dateParam(c)
	if !ok {
		return
	}

	log, err := h.summaries.GetOrCreateDailySummary(c.Request.Context(), userID, date)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":     date,
		"warnings": utils.AssessDailyIntake(log.TotalNutrients),
	})
}

// AddWater bumps the day's glass count by delta (default 1).
func (h *SummaryController) AddWater(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	date, ok := dateParam(c)
	if !ok {
		return
	}

	req := struct {
		Delta int `json:"delta"`
	}{Delta: 1}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	log, err := h.summaries.AddWater(c.Request.Context(), userID, date, req.Delta)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}
