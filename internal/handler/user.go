package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach/internal/apperror"
	"outreach/internal/middleware"
	"outreach/internal/model"
	"outreach/internal/service"
	"outreach/pkg/util"
)

// UserHandler handles staff account management
type UserHandler struct {
	users *service.UserService
	auth  *service.AuthService
}

func NewUserHandler(users *service.UserService, auth *service.AuthService) *UserHandler {
	return &UserHandler{users: users, auth: auth}
}

// CreateUserRequest provisions a new staff account.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Create handles POST /api/admin/users/create
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"uid":     user.ID.Hex(),
		"email":   user.Email,
	})
}

// List handles GET /api/admin/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// UpdateUserRequest carries the caller's idToken plus the fields to change.
type UpdateUserRequest struct {
	IDToken string  `json:"idToken"`
	Name    *string `json:"name"`
	Role    *string `json:"role"`
}

// Update handles PATCH /api/admin/users/:id. The credential travels in the
// body rather than the Authorization header.
func (h *UserHandler) Update(c *gin.Context) {
	target, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("invalid user id", err.Error()))
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	identity, err := h.auth.VerifyToken(req.IDToken)
	if err != nil {
		respondError(c, err)
		return
	}
	role, err := h.auth.ResolveRole(c.Request.Context(), identity.UID)
	if err != nil {
		respondError(c, err)
		return
	}

	caller := service.Caller{UID: identity.UID, Role: role}
	upd := service.UserUpdate{Name: req.Name, Role: req.Role}
	if err := h.users.Update(c.Request.Context(), caller, target, upd); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SubscribePrivateCalendar handles POST /api/admin/users/subscribe-private-calendar
func (h *UserHandler) SubscribePrivateCalendar(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		respondError(c, apperror.New(apperror.Unauthenticated, "missing credential"))
		return
	}

	if err := h.users.SubscribePrivateCalendar(c.Request.Context(), caller.UID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("subscribed to private calendar", nil))
}
