package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/walktrack-backend-go/internal/middleware"
	"github.com/jengzang/walktrack-backend-go/pkg/response"
)

// AuthHandler issues device tokens.
type AuthHandler struct {
	secret   string
	tokenTTL time.Duration
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(secret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{secret: secret, tokenTTL: tokenTTL}
}

type tokenRequest struct {
	DeviceID string `json:"deviceId" binding:"required"`
}

// Token handles POST /api/v1/auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "deviceId is required")
		return
	}

	token, err := middleware.IssueToken(h.secret, req.DeviceID, h.tokenTTL)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"token":     token,
		"expiresIn": int64(h.tokenTTL.Seconds()),
	})
}
