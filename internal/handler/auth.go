package handler

import (
	"errors"
	"net/http"

	"friends-corner/internal/logger"
	"friends-corner/internal/model"
	"friends-corner/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ auth *service.AuthService }

func NewAuthHandler(auth *service.AuthService) *AuthHandler { return &AuthHandler{auth: auth} }

// POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			logger.Warn("login.failed", "username", req.Username)
			c.JSON(http.StatusUnauthorized, model.LoginResponse{Success: false, Message: "Invalid credentials"})
			return
		}
		fail(c, http.StatusInternalServerError, "Login failed")
		return
	}

	logger.Info("login.ok", "username", req.Username)
	c.JSON(http.StatusOK, model.LoginResponse{Success: true, Message: "Login successful", Token: token})
}
