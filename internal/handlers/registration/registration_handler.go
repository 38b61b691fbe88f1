// internal/handlers/registration/registration_handler.go
package registration

import (
	"net/http"

	"evently-service/internal/domain/registration"
	"evently-service/internal/middleware"
	"evently-service/internal/pkg/response"
	registrationUsecase "evently-service/internal/service/registration"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RegistrationHandler struct {
	registrationService *registrationUsecase.RegistrationService
	logger              *zap.Logger
}

func NewRegistrationHandler(registrationService *registrationUsecase.RegistrationService, logger *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		logger:              logger,
	}
}

// ========== User Endpoints ==========

// ListMine returns the caller's registrations with their events.
func (h *RegistrationHandler) ListMine(c *gin.Context) {
	accountID := middleware.MustGetAccount(c).ID

	registrations, err := h.registrationService.ListByAccount(c.Request.Context(), accountID)
	if err != nil {
		response.FromError(c, "failed to list registrations", err)
		return
	}

	response.Success(c, http.StatusOK, "registrations retrieved", registrations)
}

// ========== Admin-Only Endpoints ==========

// Assign registers an account for an event.
func (h *RegistrationHandler) Assign(c *gin.Context) {
	var req registration.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	reg, err := h.registrationService.Assign(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("registration failed",
			zap.String("account_id", req.AccountID),
			zap.String("event_id", req.EventID),
			zap.Error(err),
		)
		response.FromError(c, "failed to create registration", err)
		return
	}

	response.Success(c, http.StatusCreated, "registration created", reg)
}

// ListByAccount returns registrations for a given account.
func (h *RegistrationHandler) ListByAccount(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid account ID", err)
		return
	}

	registrations, err := h.registrationService.ListByAccount(c.Request.Context(), accountID)
	if err != nil {
		response.FromError(c, "failed to list registrations", err)
		return
	}

	response.Success(c, http.StatusOK, "registrations retrieved", registrations)
}

// ListByEvent returns registrations for a given event.
func (h *RegistrationHandler) ListByEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid event ID", err)
		return
	}

	registrations, err := h.registrationService.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		response.FromError(c, "failed to list registrations", err)
		return
	}

	response.Success(c, http.StatusOK, "registrations retrieved", registrations)
}

// UpdateStatus changes a registration's participation status.
func (h *RegistrationHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid registration ID", err)
		return
	}

	var req registration.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	reg, err := h.registrationService.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, "failed to update registration", err)
		return
	}

	h.logger.Info("registration status updated",
		zap.String("registration_id", id.String()),
		zap.String("status", req.Status),
	)

	response.Success(c, http.StatusOK, "registration updated", reg)
}

// Remove deletes a registration.
func (h *RegistrationHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid registration ID", err)
		return
	}

	if err := h.registrationService.Remove(c.Request.Context(), id); err != nil {
		response.FromError(c, "failed to delete registration", err)
		return
	}

	response.Success(c, http.StatusOK, "registration deleted", nil)
}
