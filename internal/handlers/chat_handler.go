package handlers

import (
	"context"
	"net/http"

	"learnhub-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	Service *service.ChatService
}

func NewChatHandler(s *service.ChatService) *ChatHandler {
	return &ChatHandler{Service: s}
}

// History serves the stored conversation between two users.
func (h *ChatHandler) History(c *gin.Context) {
	messages, err := h.Service.History(context.Background(), c.Param("userId"), c.Param("selectedUser"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *ChatHandler) Partners(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	partners, err := h.Service.Partners(context.Background(), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chatUsers": partners})
}
