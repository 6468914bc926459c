package handlers

import (
	"context"
	"net/http"
	"time"

	"learnhub-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

func (h *UserHandler) GetMyProfile(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Service.GetProfileByEmail(context.Background(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		ID        string     `json:"_id"`
		Name      string     `json:"name"`
		Bio       string     `json:"bio"`
		Location  string     `json:"location"`
		BirthDate *time.Time `json:"birthDate"`
		ImageURL  string     `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Bio != "" {
		update["bio"] = req.Bio
	}
	if req.Location != "" {
		update["location"] = req.Location
	}
	if req.BirthDate != nil {
		update["birthDate"] = req.BirthDate
	}
	if req.ImageURL != "" {
		update["image_url"] = req.ImageURL
	}

	user, err := h.Service.UpdateProfile(context.Background(), req.ID, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
}

func (h *UserHandler) GetOtherUserProfile(c *gin.Context) {
	profile, err := h.Service.GetPublicProfile(context.Background(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) GetProgress(c *gin.Context) {
	report, err := h.Service.GetProgress(context.Background(), c.Param("progressId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *UserHandler) UpdateProgress(c *gin.Context) {
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	progress, err := h.Service.UpdateProgress(context.Background(), c.Param("progressId"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *UserHandler) StartStudySession(c *gin.Context) {
	var req struct {
		UserID  string `json:"userId"`
		Subject string `json:"subject"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.Service.StartStudySession(context.Background(), req.UserID, req.Subject)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Study session started", "session": session})
}

func (h *UserHandler) StopStudySession(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.Service.StopStudySession(context.Background(), req.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Study session ended", "session": session})
}
