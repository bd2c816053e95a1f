package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/DamianMlM/yummy-bakery-web/internal/config"
	"github.com/DamianMlM/yummy-bakery-web/internal/redis"
)

type AuthHandler struct {
	cfg      *config.Config
	sessions *redis.Client
}

func NewAuthHandler(cfg *config.Config, sessions *redis.Client) *AuthHandler {
	return &AuthHandler{cfg: cfg, sessions: sessions}
}

// Login exchanges the shared admin PIN for a bearer token. The PIN gate is
// an operator convenience, not a hardened security boundary.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		PIN string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if h.cfg.AdminPINHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin PIN not configured"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPINHash), []byte(req.PIN)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong PIN"})
		return
	}

	sessionID := uuid.NewString()
	ttl := time.Duration(h.cfg.SessionTTL) * time.Second
	now := time.Now()

	session := &redis.SessionData{
		TokenID:   sessionID,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
	if err := h.sessions.SetSession(sessionID, session, ttl); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      signed,
		"expires_at": session.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString("sessionID")
	if sessionID != "" {
		if err := h.sessions.DeleteSession(sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end session"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}
