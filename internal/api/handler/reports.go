package handler

import (
	"errors"
	"net/http"
	"strconv"

	"anonchat/backend/internal/report"
	"anonchat/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type createReportRequest struct {
	ChatID string `json:"chat_id" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// CreateReport files a report against the authenticated user's partner
// in the given chat.
func (h *Handler) CreateReport(c *gin.Context) {
	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chat_id and reason are required"})
		return
	}

	r, err := h.Reports.CreateReport(req.ChatID, c.GetString("username"), req.Reason)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "chat not found"})
	case errors.Is(err, report.ErrIssuerNotInChat):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create report"})
	default:
		c.JSON(http.StatusCreated, r)
	}
}

// GetReports lists all reports.
func (h *Handler) GetReports(c *gin.Context) {
	reports, err := h.Reports.GetReports()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetReportByID returns a single report.
func (h *Handler) GetReportByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	r, err := h.Reports.GetReportByID(uint(id))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get report"})
		return
	}
	c.JSON(http.StatusOK, r)
}
