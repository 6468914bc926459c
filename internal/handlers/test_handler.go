package handlers

import (
	"context"
	"net/http"

	"learnhub-service/internal/models"
	"learnhub-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type TestHandler struct {
	Service *service.TestService
}

func NewTestHandler(s *service.TestService) *TestHandler {
	return &TestHandler{Service: s}
}

func (h *TestHandler) CreateTest(c *gin.Context) {
	var test models.Test
	if err := c.ShouldBindJSON(&test); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateTest(context.Background(), &test); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Test created successfully", "test": test})
}

func (h *TestHandler) UpdateTest(c *gin.Context) {
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	test, err := h.Service.UpdateTest(context.Background(), c.Param("testId"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Test updated successfully", "test": test})
}

func (h *TestHandler) DeleteTest(c *gin.Context) {
	if err := h.Service.DeleteTest(context.Background(), c.Param("testId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Test deleted successfully"})
}

func (h *TestHandler) ListTests(c *gin.Context) {
	tests, err := h.Service.ListTests(context.Background(), c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	if tests == nil {
		tests = []models.Test{}
	}
	c.JSON(http.StatusOK, gin.H{"tests": tests})
}

func (h *TestHandler) GetTest(c *gin.Context) {
	test, err := h.Service.GetTest(context.Background(), c.Param("testId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"test": test})
}

// RecordAttempt grades a submitted answer set and updates progress, roster
// and leaderboard in one request.
func (h *TestHandler) RecordAttempt(c *gin.Context) {
	var req service.AttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.Service.RecordTestAttempt(context.Background(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TestHandler) GetLeaderboard(c *gin.Context) {
	leaderboard, err := h.Service.GetLeaderboard(context.Background(), c.Param("testId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": leaderboard})
}
