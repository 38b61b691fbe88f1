// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	"evently-service/internal/domain/account"
	"evently-service/internal/middleware"
	"evently-service/internal/pkg/response"
	authUsecase "evently-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *authUsecase.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *authUsecase.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// ========== Login ==========

// Login verifies credentials and issues a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req account.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	req.IPAddress = c.ClientIP()

	loginResp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.logger.Warn("login failed",
			zap.String("identifier", req.Identifier()),
			zap.String("ip", req.IPAddress),
			zap.Error(err),
		)
		response.FromError(c, "login failed", err)
		return
	}

	h.logger.Info("user logged in",
		zap.String("account_id", loginResp.User.ID.String()),
		zap.String("email", loginResp.User.Email),
	)

	response.Success(c, http.StatusOK, "login successful", loginResp)
}

// ========== Profile ==========

// GetMe returns the verified account behind the current token.
func (h *AuthHandler) GetMe(c *gin.Context) {
	acct := middleware.MustGetAccount(c)
	response.Success(c, http.StatusOK, "profile retrieved", acct.Sanitized())
}
