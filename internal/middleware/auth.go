// Package middleware holds the gin middleware shared by the routes.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"outreach/internal/apperror"
	"outreach/internal/model"
	"outreach/internal/service"
)

// Context keys populated by RequireAuth.
const (
	CtxUID   = "uid"
	CtxEmail = "email"
	CtxRole  = "role"
)

// RequireAuth verifies the Authorization: Bearer credential, resolves the
// caller's role and stores the identity on the request context. Requests
// without a valid credential are rejected.
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("missing bearer credential", ""))
			return
		}

		identity, err := auth.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(apperror.KindOf(err).HTTPStatus(), model.NewErrorResponse(apperror.MessageOf(err), apperror.DetailOf(err)))
			return
		}

		role, err := auth.ResolveRole(c.Request.Context(), identity.UID)
		if err != nil {
			c.AbortWithStatusJSON(apperror.KindOf(err).HTTPStatus(), model.NewErrorResponse(apperror.MessageOf(err), apperror.DetailOf(err)))
			return
		}

		c.Set(CtxUID, identity.UID)
		c.Set(CtxEmail, identity.Email)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// CallerFrom extracts the verified caller set by RequireAuth.
func CallerFrom(c *gin.Context) (service.Caller, bool) {
	uid, ok := c.Get(CtxUID)
	if !ok {
		return service.Caller{}, false
	}
	objID, ok := uid.(primitive.ObjectID)
	if !ok {
		return service.Caller{}, false
	}
	return service.Caller{UID: objID, Role: c.GetString(CtxRole)}, true
}
