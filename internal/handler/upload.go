package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach/internal/model"
	"outreach/internal/service"
)

// UploadHandler handles the generic admin upload and the public upload echo
type UploadHandler struct {
	uploads *service.UploadService
}

func NewUploadHandler(uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Admin handles POST /api/admin/upload. The form carries the file plus the
// eventId/taskId identifiers that shape the object path.
func (h *UploadHandler) Admin(c *gin.Context) {
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

	url, objectPath, err := h.uploads.Store(
		c.PostForm("eventId"),
		c.PostForm("taskId"),
		fileHeader.Filename,
		contentType,
		file,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "path": objectPath})
}

// Public handles POST /api/upload: it validates the multipart payload and
// echoes the file metadata without persisting anything.
func (h *UploadHandler) Public(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("no file found in multipart payload, expected field name 'file'", err.Error()))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.JSON(http.StatusOK, gin.H{
		"filename": fileHeader.Filename,
		"size":     fileHeader.Size,
		"type":     contentType,
	})
}
