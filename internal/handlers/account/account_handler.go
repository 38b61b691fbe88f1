// internal/handlers/account/account_handler.go
package account

import (
	"net/http"
	"strconv"

	"evently-service/internal/domain/account"
	"evently-service/internal/pkg/response"
	accountUsecase "evently-service/internal/service/account"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccountHandler struct {
	accountService *accountUsecase.AccountService
	logger         *zap.Logger
}

func NewAccountHandler(accountService *accountUsecase.AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// ========== Admin-Only Endpoints ==========

// Create registers a new account.
func (h *AccountHandler) Create(c *gin.Context) {
	var req account.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	acct, err := h.accountService.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("account creation failed",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		response.FromError(c, "failed to create account", err)
		return
	}

	response.Success(c, http.StatusCreated, "account created", acct)
}

// List returns a page of accounts.
func (h *AccountHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	accounts, total, err := h.accountService.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.FromError(c, "failed to list accounts", err)
		return
	}

	response.Success(c, http.StatusOK, "accounts retrieved", gin.H{
		"accounts": accounts,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// Get returns a single account by id.
func (h *AccountHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid account ID", err)
		return
	}

	acct, err := h.accountService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to get account", err)
		return
	}

	response.Success(c, http.StatusOK, "account retrieved", acct)
}

// UpdateRole changes an account's role.
func (h *AccountHandler) UpdateRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid account ID", err)
		return
	}

	var req account.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.accountService.UpdateRole(c.Request.Context(), id, req.Role); err != nil {
		response.FromError(c, "failed to update role", err)
		return
	}

	h.logger.Info("account role updated",
		zap.String("account_id", id.String()),
		zap.String("role", req.Role),
	)

	response.Success(c, http.StatusOK, "role updated", nil)
}

// SetActive toggles an account's active flag. Deactivating an account
// invalidates its outstanding sessions on next verification.
func (h *AccountHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid account ID", err)
		return
	}

	var req account.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.accountService.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		response.FromError(c, "failed to update account", err)
		return
	}

	response.Success(c, http.StatusOK, "account updated", nil)
}

// Delete removes an account and its registrations.
func (h *AccountHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid account ID", err)
		return
	}

	if err := h.accountService.Remove(c.Request.Context(), id); err != nil {
		response.FromError(c, "failed to delete account", err)
		return
	}

	h.logger.Info("account deleted", zap.String("account_id", id.String()))

	response.Success(c, http.StatusOK, "account deleted", nil)
}
