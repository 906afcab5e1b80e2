// auth.go - Handles user registration, login and the current-user endpoint

package handlers // Declares the package name

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"go-pollution-backend/apperrors"
	"go-pollution-backend/auth"
	"go-pollution-backend/middleware"
	"go-pollution-backend/models"
	"go-pollution-backend/repository"
)

// AuthHandler serves the /api/auth routes.
type AuthHandler struct {
	Users      *repository.Users
	JWTSecret  string
	BcryptCost int
}

type RegisterInput struct { // Struct for registration input
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// userResponse is the public projection of a user (no password hash).
type userResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

func toUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:      user.ID.String(),
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
}

// Register creates a new account and returns a token for it.
func (h *AuthHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user := &models.User{Name: input.Name, Email: input.Email}
	if err := user.SetPassword(input.Password, h.BcryptCost); err != nil {
		respondError(c, apperrors.Unexpected("Server error during registration", err))
		return
	}

	if err := h.Users.Create(c.Request.Context(), user); err != nil {
		respondError(c, err) // 409 when the email is already registered
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID)
	if err != nil {
		respondError(c, apperrors.Unexpected("Server error during registration", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    toUserResponse(user),
	})
}

// Login verifies credentials and returns a fresh token.
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), input.Email)
	if err != nil && apperrors.KindOf(err) != apperrors.KindNotFound {
		respondError(c, err)
		return
	}
	if err != nil || !user.ValidatePassword(input.Password) {
		// Same answer for unknown email and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID)
	if err != nil {
		respondError(c, apperrors.Unexpected("Server error during login", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    toUserResponse(user),
	})
}

// Me returns the authenticated caller's account.
func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	user, err := h.Users.FindByID(c.Request.Context(), actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}
