package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	demoEmail    = "admin@gov.in"
	demoPassword = "password123"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) LoginPage(c *gin.Context) {
	state, ok := h.state(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hint":     h.Translator.T(state.Language, "demo_credentials_hint"),
		"theme":    state.Theme,
		"language": state.Language,
	})
}

// Login accepts only the demo credentials. There is no lockout.
func (h *Handlers) Login(c *gin.Context) {
	state, ok := h.state(c)
	if !ok {
		return
	}

	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Email) != demoEmail || req.Password != demoPassword {
		log.Infof("Rejected login for %q", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": h.Translator.T(state.Language, "invalid_credentials"),
		})
		return
	}

	if err := h.Preferences.SetAuthenticated(c.Request.Context(), true); err != nil {
		log.WithError(err).Error("Failed to persist login")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "redirect": "/dashboard"})
}

func (h *Handlers) Signup(c *gin.Context) {
	state, ok := h.state(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": h.Translator.T(state.Language, "signup_demo_only"),
	})
}

func (h *Handlers) Logout(c *gin.Context) {
	state, ok := h.state(c)
	if !ok {
		return
	}

	if err := h.Preferences.SetAuthenticated(c.Request.Context(), false); err != nil {
		log.WithError(err).Error("Failed to persist logout")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": false,
		"message":       h.Translator.T(state.Language, "logged_out"),
		"redirect":      "/login",
	})
}
