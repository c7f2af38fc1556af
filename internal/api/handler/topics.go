package handler

import (
	"errors"
	"net/http"
	"strconv"

	"anonchat/backend/internal/models"
	"anonchat/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// GetTopics lists the chat topics available for matchmaking.
func (h *Handler) GetTopics(c *gin.Context) {
	topics, err := h.Storage.GetTopics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get topics"})
		return
	}
	c.JSON(http.StatusOK, topics)
}

type requestTopicRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateRequestTopic files a topic suggestion from the authenticated user.
func (h *Handler) CreateRequestTopic(c *gin.Context) {
	var req requestTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	rt := &models.RequestTopic{
		Name:        req.Name,
		RequestedBy: c.GetString("username"),
	}
	if err := h.Storage.CreateRequestTopic(rt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create topic request"})
		return
	}
	c.JSON(http.StatusCreated, rt)
}

// GetRequestTopics lists all topic suggestions.
func (h *Handler) GetRequestTopics(c *gin.Context) {
	requests, err := h.Storage.GetRequestTopics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get topic requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GetRequestTopic returns a single topic suggestion.
func (h *Handler) GetRequestTopic(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	rt, err := h.Storage.GetRequestTopicByID(uint(id))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "topic request not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get topic request"})
		return
	}
	c.JSON(http.StatusOK, rt)
}

type updateRequestTopicRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateRequestTopicStatus moves a topic suggestion through moderation.
func (h *Handler) UpdateRequestTopicStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req updateRequestTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	switch req.Status {
	case models.RequestTopicApproved, models.RequestTopicRejected, models.RequestTopicPending:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	if err := h.Storage.UpdateRequestTopicStatus(uint(id), req.Status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "topic request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update topic request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
