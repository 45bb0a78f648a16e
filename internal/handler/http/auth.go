// Package http holds the gin handlers and the service-error to
// HTTP-status mapping.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tusharnayak1515/users-data-backend/internal/middleware"
	"github.com/tusharnayak1515/users-data-backend/internal/service"
)

// AuthHandler wires the account routes to the AuthService.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// currentUserID reads the authenticated user id the Auth middleware put
// into the context. A miss means the middleware did not run.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		logrus.Warn("Handler: user id not found in context, auth middleware missing?")
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok {
		logrus.Error("Handler: user id in context is not uint")
		return 0, false
	}
	return userID, true
}

// RegisterRequest is the body of POST /api/auth/register. Field rules
// are enforced by the service so the first-failure ordering stays
// deterministic.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Register: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input format")
		return
	}

	authToken, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, gin.H{"authToken": authToken})
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Login: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input format")
		return
	}

	authToken, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, gin.H{"authToken": authToken})
}

// Profile handles GET /api/auth/profile. The returned record never
// includes the password hash.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Please authenticate using a valid token")
		return
	}

	profile, err := h.authService.Profile(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, gin.H{"profile": profile})
}

// EditProfileRequest is the body of PUT /api/auth/editprofile. The
// password is not editable through this route.
type EditProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// EditProfile handles PUT /api/auth/editprofile. The target user is
// always the caller; client-supplied ids are never honored.
func (h *AuthHandler) EditProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Please authenticate using a valid token")
		return
	}

	var req EditProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.EditProfile: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input format")
		return
	}

	profile, err := h.authService.EditProfile(c.Request.Context(), userID, req.Name, req.Email, req.Phone)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, gin.H{"profile": profile})
}
