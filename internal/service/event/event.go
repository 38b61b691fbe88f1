// internal/service/event/event.go
package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"evently-service/internal/domain/category"
	"evently-service/internal/domain/event"
	"evently-service/internal/domain/registration"
	xerrors "evently-service/internal/pkg/errors"
)

const defaultSlots = 100

type EventService struct {
	events        event.Repository
	categories    category.Repository
	registrations registration.Repository
	logger        *zap.Logger
}

func NewEventService(
	events event.Repository,
	categories category.Repository,
	registrations registration.Repository,
	logger *zap.Logger,
) *EventService {
	return &EventService{
		events:        events,
		categories:    categories,
		registrations: registrations,
		logger:        logger,
	}
}

// Create creates an event owned by the given organizer. The category must
// exist; slots default when omitted.
func (s *EventService) Create(ctx context.Context, req *event.CreateRequest, organizerID uuid.UUID) (*event.Event, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid category id", xerrors.ErrInvalidInput)
	}
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("category lookup failed: %w", err)
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("%w: event must end after it starts", xerrors.ErrInvalidInput)
	}

	slots := req.Slots
	if slots <= 0 {
		slots = defaultSlots
	}

	e := &event.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Price:       req.Price,
		IsFree:      req.IsFree,
		URL:         req.URL,
		Slots:       slots,
		CategoryID:  categoryID,
		OrganizerID: organizerID,
	}

	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}

	s.logger.Info("event created",
		zap.String("event_id", e.ID.String()),
		zap.String("title", e.Title),
	)
	return e, nil
}

func (s *EventService) Get(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *EventService) List(ctx context.Context, filter event.ListFilter) ([]*event.Event, int64, error) {
	if filter.CategoryID != "" {
		if _, err := uuid.Parse(filter.CategoryID); err != nil {
			return nil, 0, fmt.Errorf("%w: invalid category id", xerrors.ErrInvalidInput)
		}
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.events.List(ctx, filter)
}

// Update applies the non-nil fields of req to an existing event.
func (s *EventService) Update(ctx context.Context, id uuid.UUID, req *event.UpdateRequest) (*event.Event, error) {
	e, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Location != nil {
		e.Location = *req.Location
	}
	if req.ImageURL != nil {
		e.ImageURL = *req.ImageURL
	}
	if req.StartTime != nil {
		e.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		e.EndTime = *req.EndTime
	}
	if req.Price != nil {
		e.Price = *req.Price
	}
	if req.IsFree != nil {
		e.IsFree = *req.IsFree
	}
	if req.URL != nil {
		e.URL = *req.URL
	}
	if req.Slots != nil {
		e.Slots = *req.Slots
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid category id", xerrors.ErrInvalidInput)
		}
		if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
			return nil, fmt.Errorf("category lookup failed: %w", err)
		}
		e.CategoryID = categoryID
	}

	if !e.EndTime.After(e.StartTime) {
		return nil, fmt.Errorf("%w: event must end after it starts", xerrors.ErrInvalidInput)
	}

	if err := s.events.Update(ctx, e); err != nil {
		return nil, err
	}

	s.logger.Info("event updated", zap.String("event_id", e.ID.String()))
	return e, nil
}

// Delete removes an event and its registrations.
func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.registrations.DeleteByEvent(ctx, id); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("event deleted", zap.String("event_id", id.String()))
	return nil
}
