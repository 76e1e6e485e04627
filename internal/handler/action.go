package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach/internal/model"
	"outreach/internal/service"
)

// ActionHandler handles the mvp2 action tracking endpoints
type ActionHandler struct {
	actions *service.ActionService
}

func NewActionHandler(actions *service.ActionService) *ActionHandler {
	return &ActionHandler{actions: actions}
}

// RecordActionRequest is the POST body.
type RecordActionRequest struct {
	PersonID string         `json:"personId"`
	Action   string         `json:"action"`
	Metadata map[string]any `json:"metadata"`
}

// Record handles POST /api/admin/mvp2
func (h *ActionHandler) Record(c *gin.Context) {
	var req RecordActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	entry, err := h.actions.Record(c.Request.Context(), req.PersonID, req.Action, req.Metadata)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      entry.ID.Hex(),
		"index":   entry.Index,
	})
}

// List handles GET /api/admin/mvp2 with optional personId/action filters
func (h *ActionHandler) List(c *gin.Context) {
	entries, err := h.actions.List(c.Request.Context(), c.Query("personId"), c.Query("action"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
