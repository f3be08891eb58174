package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/themisatsal/hilla-mobile-sub000/services"
)

type AdviceController struct {
	assistant *services.AssistantService
}

func NewAdviceController(assistant *services.AssistantService) *AdviceController {
	return &AdviceController{assistant: assistant}
}

func (h *AdviceController) Ask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.assistant.Ask(c.Request.Context(), userID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			serviceError(c, err)
			return
		}
		// Upstream assistant failures are the upstream's fault, not ours.
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
