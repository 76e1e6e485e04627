package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach/internal/apperror"
	"outreach/internal/model"
	"outreach/internal/service"
)

// RequestHandler handles the staff request records
type RequestHandler struct {
	requests *service.RequestService
}

func NewRequestHandler(requests *service.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

// List handles GET /api/admin/requests with optional type/status filters
func (h *RequestHandler) List(c *gin.Context) {
	requests, err := h.requests.List(c.Request.Context(), c.Query("type"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// Update handles PATCH /api/admin/requests. The body carries the target id
// plus the fields to merge.
func (h *RequestHandler) Update(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	id, _ := body["id"].(string)
	if id == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("id is required", ""))
		return
	}

	if err := h.requests.Update(c.Request.Context(), id, body); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Create handles POST /api/admin/requests. Request intake happens on the
// public site, not in the admin panel; this route is a placeholder.
func (h *RequestHandler) Create(c *gin.Context) {
	respondError(c, apperror.New(apperror.NotImplemented, "request intake is handled by the public site"))
}
