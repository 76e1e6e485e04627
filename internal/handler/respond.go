// Package handler contains the HTTP handlers. Each handler validates input,
// calls a service and writes a JSON response; every failure is translated
// from the error taxonomy at this boundary.
package handler

import (
	"github.com/gin-gonic/gin"

	"outreach/internal/apperror"
	"outreach/internal/model"
)

// respondError translates a service error into its HTTP status and the
// uniform {error} envelope, passing the upstream cause through as detail.
func respondError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	c.JSON(kind.HTTPStatus(), model.NewErrorResponse(apperror.MessageOf(err), apperror.DetailOf(err)))
}
