// internal/service/registration/registration.go
package registration

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"evently-service/internal/domain/account"
	"evently-service/internal/domain/event"
	"evently-service/internal/domain/registration"
	xerrors "evently-service/internal/pkg/errors"
)

// StatusNotifier pushes registration status changes to the affected account's
// connected clients. Implemented by the websocket hub.
type StatusNotifier interface {
	NotifyRegistrationUpdated(accountID uuid.UUID, reg *registration.Registration)
}

type RegistrationService struct {
	registrations registration.Repository
	accounts      account.Repository
	events        event.Repository
	notifier      StatusNotifier
	logger        *zap.Logger
}

func NewRegistrationService(
	registrations registration.Repository,
	accounts account.Repository,
	events event.Repository,
	notifier StatusNotifier,
	logger *zap.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrations: registrations,
		accounts:      accounts,
		events:        events,
		notifier:      notifier,
		logger:        logger,
	}
}

// Assign links an account to an event with Pending status. Both sides must
// exist; a duplicate assignment is rejected.
func (s *RegistrationService) Assign(ctx context.Context, req *registration.CreateRequest) (*registration.Registration, error) {
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid account id", xerrors.ErrInvalidInput)
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event id", xerrors.ErrInvalidInput)
	}

	if _, err := s.accounts.FindByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("event lookup failed: %w", err)
	}

	reg := &registration.Registration{
		AccountID: accountID,
		EventID:   eventID,
		Status:    registration.StatusPending,
		Note:      req.Note,
	}

	if err := s.registrations.Create(ctx, reg); err != nil {
		return nil, err
	}

	s.logger.Info("registration created",
		zap.String("registration_id", reg.ID.String()),
		zap.String("account_id", accountID.String()),
		zap.String("event_id", eventID.String()),
	)
	return reg, nil
}

// ListByAccount returns an account's registrations with events joined.
func (s *RegistrationService) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*registration.Registration, error) {
	return s.registrations.ListByAccount(ctx, accountID)
}

// ListByEvent returns all registrations for an event.
func (s *RegistrationService) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*registration.Registration, error) {
	return s.registrations.ListByEvent(ctx, eventID)
}

// UpdateStatus changes participation status and pushes the change to the
// affected account's connected clients.
func (s *RegistrationService) UpdateStatus(ctx context.Context, id uuid.UUID, req *registration.UpdateStatusRequest) (*registration.Registration, error) {
	status, err := registration.ParseStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerrors.ErrInvalidInput, err)
	}

	reg, err := s.registrations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	note := req.Note
	if note == "" {
		note = reg.Note
	}

	if err := s.registrations.UpdateStatus(ctx, id, status, note); err != nil {
		return nil, err
	}
	reg.Status = status
	reg.Note = note

	if s.notifier != nil {
		s.notifier.NotifyRegistrationUpdated(reg.AccountID, reg)
	}

	s.logger.Info("registration status updated",
		zap.String("registration_id", id.String()),
		zap.String("status", string(status)),
	)
	return reg, nil
}

// Remove deletes a registration.
func (s *RegistrationService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.registrations.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("registration removed", zap.String("registration_id", id.String()))
	return nil
}
