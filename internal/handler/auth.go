package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"outreach/internal/middleware"
	"outreach/internal/model"
	"outreach/internal/service"
)

// AuthHandler handles login and session checks
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// LoginRequest accepts either an existing idToken for verification or
// credentials for issuance.
type LoginRequest struct {
	IDToken  string `json:"idToken"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	if req.IDToken != "" {
		if _, err := h.auth.VerifyToken(req.IDToken); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "idToken": token})
}

// Check handles GET /api/admin/auth/check. RequireAuth has already verified
// the bearer credential and resolved the role.
func (h *AuthHandler) Check(c *gin.Context) {
	uid, _ := c.Get(middleware.CtxUID)
	objID, _ := uid.(primitive.ObjectID)

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"uid":   objID.Hex(),
			"email": c.GetString(middleware.CtxEmail),
			"role":  c.GetString(middleware.CtxRole),
		},
	})
}
