package handler

import (
	"errors"
	"net/http"

	"anonchat/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// GetUserProfile returns the authenticated user's profile.
func (h *Handler) GetUserProfile(c *gin.Context) {
	user, err := h.Storage.GetUserByUsername(c.GetString("username"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserQuota returns the match count consumed by a user in the current
// window.
func (h *Handler) GetUserQuota(c *gin.Context) {
	count, err := h.Quota.GetUserQuota(c.Param("username"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get quota"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": c.Param("username"), "quota": count})
}

// UpdateUserQuota records one more consumed match for a user.
func (h *Handler) UpdateUserQuota(c *gin.Context) {
	if err := h.Quota.UpdateUserQuota(c.Param("username")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update quota"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": c.Param("username")})
}
