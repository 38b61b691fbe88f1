// internal/handlers/event/event_handler.go
package event

import (
	"net/http"
	"strconv"

	"evently-service/internal/domain/event"
	"evently-service/internal/middleware"
	"evently-service/internal/pkg/response"
	eventUsecase "evently-service/internal/service/event"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventHandler struct {
	eventService *eventUsecase.EventService
	logger       *zap.Logger
}

func NewEventHandler(eventService *eventUsecase.EventService, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// ========== Public Endpoints ==========

// List returns events, optionally filtered by category.
func (h *EventHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := event.ListFilter{
		CategoryID: c.Query("category_id"),
		Limit:      limit,
		Offset:     offset,
	}

	events, total, err := h.eventService.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, "failed to list events", err)
		return
	}

	response.Success(c, http.StatusOK, "events retrieved", gin.H{
		"events": events,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// Get returns a single event by id.
func (h *EventHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid event ID", err)
		return
	}

	evt, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to get event", err)
		return
	}

	response.Success(c, http.StatusOK, "event retrieved", evt)
}

// ========== Admin-Only Endpoints ==========

// Create registers a new event with the caller as organizer.
func (h *EventHandler) Create(c *gin.Context) {
	var req event.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	organizerID := middleware.MustGetAccount(c).ID

	evt, err := h.eventService.Create(c.Request.Context(), &req, organizerID)
	if err != nil {
		h.logger.Error("event creation failed",
			zap.String("title", req.Title),
			zap.Error(err),
		)
		response.FromError(c, "failed to create event", err)
		return
	}

	response.Success(c, http.StatusCreated, "event created", evt)
}

// Update applies a partial update to an event.
func (h *EventHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid event ID", err)
		return
	}

	var req event.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	evt, err := h.eventService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, "failed to update event", err)
		return
	}

	response.Success(c, http.StatusOK, "event updated", evt)
}

// Delete removes an event and its registrations.
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid event ID", err)
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, "failed to delete event", err)
		return
	}

	h.logger.Info("event deleted", zap.String("event_id", id.String()))

	response.Success(c, http.StatusOK, "event deleted", nil)
}
