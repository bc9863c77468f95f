package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/modernblog/modernblog/middleware"
	"github.com/modernblog/modernblog/repository"
	"github.com/modernblog/modernblog/utils"
)

const sessionDuration = 24 * time.Hour

// AuthController handles admin login, logout and session introspection.
type AuthController struct {
	users *repository.UserRepository
}

// NewAuthController creates an AuthController.
func NewAuthController(users *repository.UserRepository) *AuthController {
	return &AuthController{users: users}
}

// Login verifies credentials and issues a session JWT. Wrong username and
// wrong password produce the same response.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40070, "username and password are required")
		return
	}

	user, err := a.users.VerifyPassword(strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50070, "login failed")
		return
	}
	if user == nil {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "invalid username or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, sessionDuration)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50071, "failed to issue token")
		return
	}

	utils.Success(ctx, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// Logout revokes the presented token by blacklisting it until its natural
// expiry.
func (a *AuthController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		utils.Error(ctx, http.StatusBadRequest, 40071, "missing bearer token")
		return
	}
	token := strings.TrimSpace(parts[1])

	expiresAt := time.Now().Add(sessionDuration)
	if claims, err := utils.ParseToken(token); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	utils.BlacklistToken(token, expiresAt)
	utils.Success(ctx, gin.H{"message": "logged out"})
}

// Me returns the authenticated author's profile.
func (a *AuthController) Me(ctx *gin.Context) {
	userID, exists := ctx.Get(middleware.ContextUserIDKey)
	id, ok := userID.(uint)
	if !exists || !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40111, "not authenticated")
		return
	}

	user, err := a.users.GetByID(id)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50072, "failed to load user")
		return
	}
	if user == nil {
		utils.Error(ctx, http.StatusUnauthorized, 40112, "user no longer exists")
		return
	}

	utils.Success(ctx, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"bio":      user.Bio,
		"role":     user.Role,
	})
}
