package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach/internal/model"
	"outreach/internal/service"
)

// SuggestionHandler handles the suggestion inbox
type SuggestionHandler struct {
	suggestions *service.SuggestionService
}

func NewSuggestionHandler(suggestions *service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions}
}

// CreateSuggestionRequest is the POST body.
type CreateSuggestionRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Page        string `json:"page"`
}

// Create handles POST /api/admin/suggestions
func (h *SuggestionHandler) Create(c *gin.Context) {
	var req CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	suggestion, err := h.suggestions.Create(c.Request.Context(), req.Description, req.Category, req.Page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": suggestion.ID.Hex(), "success": true})
}

// List handles GET /api/admin/suggestions
func (h *SuggestionHandler) List(c *gin.Context) {
	suggestions, err := h.suggestions.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
