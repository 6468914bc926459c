package handlers

import (
	"context"
	"net/http"
	"time"

	"learnhub-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

func (h *SessionHandler) CreateSessionAlert(c *gin.Context) {
	var req struct {
		SessionName string    `json:"sessionName"`
		Time        string    `json:"time"`
		Date        time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.Service.CreateSessionAlert(context.Background(), req.SessionName, req.Time, req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) TodaysSessions(c *gin.Context) {
	sessions, err := h.Service.TodaysSessions(context.Background())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(context.Background(), c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) SessionsByUser(c *gin.Context) {
	sessions, err := h.Service.SessionsByUser(context.Background(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *SessionHandler) StartSession(c *gin.Context) {
	var req struct {
		UserID      string `json:"userId"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.Service.StartSession(context.Background(), req.UserID, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Session started successfully", "session": session})
}

func (h *SessionHandler) StopSession(c *gin.Context) {
	session, err := h.Service.StopSession(context.Background(), c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session stopped successfully", "session": session})
}

func (h *SessionHandler) UpdateSession(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.Service.UpdateSession(context.Background(), c.Param("sessionId"), req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session updated successfully", "session": session})
}

func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if err := h.Service.DeleteSession(context.Background(), c.Param("sessionId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted successfully"})
}
