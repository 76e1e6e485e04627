package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach/internal/model"
	"outreach/internal/service"
)

// EventHandler handles event content management and the public listing
type EventHandler struct {
	events *service.EventService
}

func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// GetContent handles GET /api/admin/events/:id/content
func (h *EventHandler) GetContent(c *gin.Context) {
	content, err := h.events.GetContent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}

// UpdateContent handles PATCH /api/admin/events/:id/content
func (h *EventHandler) UpdateContent(c *gin.Context) {
	var patch model.EventContentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	if err := h.events.UpdateContent(c.Request.Context(), c.Param("id"), patch); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UploadContent handles POST /api/admin/events/:id/content/upload
func (h *EventHandler) UploadContent(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("no file found in multipart payload, expected field name 'file'", err.Error()))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("failed to open uploaded file", err.Error()))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, fileType, err := h.events.AttachUpload(c.Request.Context(), c.Param("id"), fileHeader.Filename, contentType, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "fileType": fileType})
}

// ListPublic handles GET /api/events
func (h *EventHandler) ListPublic(c *gin.Context) {
	includePrivate := c.Query("private") == "true"

	events, err := h.events.ListPublic(c.Request.Context(), includePrivate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}
