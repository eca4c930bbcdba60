package handlers

import (
	"errors"
	"net/http"

	"palmera/services/auth"
	"palmera/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes admin portal login and logout.
type AuthHandler struct {
	Svc auth.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// Login exchanges the admin key for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		Key   string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	token, err := h.Svc.Login(c.Request.Context(), input.Email, input.Key)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "login failed", "invalid admin credentials")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout revokes the presented token's session.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString("adminToken")
	if token == "" {
		utils.JSONError(c, http.StatusUnauthorized, "logout failed", "no admin session")
		return
	}
	if err := h.Svc.Logout(c.Request.Context(), token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
