package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach/internal/model"
	"outreach/internal/service"
)

// NewsletterHandler handles public newsletter signups
type NewsletterHandler struct {
	newsletter *service.NewsletterService
}

func NewNewsletterHandler(newsletter *service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter}
}

// SignupRequest is the POST body.
type SignupRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Signup handles POST /api/newsletter
func (h *NewsletterHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	if _, err := h.newsletter.Signup(c.Request.Context(), req.Name, req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thanks for signing up!"})
}
