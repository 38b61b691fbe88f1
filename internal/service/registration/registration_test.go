package registration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"evently-service/internal/domain/account"
	"evently-service/internal/domain/event"
	"evently-service/internal/domain/registration"
	xerrors "evently-service/internal/pkg/errors"
)

// ---- fakes ----

type fakeRegistrationRepo struct {
	byID map[uuid.UUID]*registration.Registration
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{byID: make(map[uuid.UUID]*registration.Registration)}
}

func (r *fakeRegistrationRepo) Create(_ context.Context, reg *registration.Registration) error {
	for _, have := range r.byID {
		if have.AccountID == reg.AccountID && have.EventID == reg.EventID {
			return xerrors.ErrDuplicateEntry
		}
	}
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	cp := *reg
	r.byID[reg.ID] = &cp
	return nil
}

func (r *fakeRegistrationRepo) FindByID(_ context.Context, id uuid.UUID) (*registration.Registration, error) {
	reg, ok := r.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *reg
	return &cp, nil
}

func (r *fakeRegistrationRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]*registration.Registration, error) {
	var out []*registration.Registration
	for _, reg := range r.byID {
		if reg.AccountID == accountID {
			cp := *reg
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRegistrationRepo) ListByEvent(_ context.Context, eventID uuid.UUID) ([]*registration.Registration, error) {
	var out []*registration.Registration
	for _, reg := range r.byID {
		if reg.EventID == eventID {
			cp := *reg
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRegistrationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status registration.Status, note string) error {
	reg, ok := r.byID[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	reg.Status = status
	reg.Note = note
	return nil
}

func (r *fakeRegistrationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeRegistrationRepo) DeleteByAccount(_ context.Context, accountID uuid.UUID) error {
	for id, reg := range r.byID {
		if reg.AccountID == accountID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *fakeRegistrationRepo) DeleteByEvent(_ context.Context, eventID uuid.UUID) error {
	for id, reg := range r.byID {
		if reg.EventID == eventID {
			delete(r.byID, id)
		}
	}
	return nil
}

type fakeAccountRepo struct {
	known map[uuid.UUID]bool
}

func (r *fakeAccountRepo) Create(context.Context, *account.Account) error { return nil }

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*account.Account, error) {
	if !r.known[id] {
		return nil, xerrors.ErrNotFound
	}
	return &account.Account{ID: id, IsActive: true}, nil
}

func (r *fakeAccountRepo) FindByEmail(context.Context, string) (*account.Account, error) {
	return nil, xerrors.ErrNotFound
}

func (r *fakeAccountRepo) FindByUsername(context.Context, string) (*account.Account, error) {
	return nil, xerrors.ErrNotFound
}

func (r *fakeAccountRepo) List(context.Context, int, int) ([]*account.Account, int64, error) {
	return nil, 0, nil
}

func (r *fakeAccountRepo) UpdateRole(context.Context, uuid.UUID, account.Role) error { return nil }
func (r *fakeAccountRepo) SetActive(context.Context, uuid.UUID, bool) error          { return nil }
func (r *fakeAccountRepo) Delete(context.Context, uuid.UUID) error                   { return nil }

type fakeEventRepo struct {
	known map[uuid.UUID]bool
}

func (r *fakeEventRepo) Create(context.Context, *event.Event) error { return nil }

func (r *fakeEventRepo) FindByID(_ context.Context, id uuid.UUID) (*event.Event, error) {
	if !r.known[id] {
		return nil, xerrors.ErrNotFound
	}
	return &event.Event{ID: id}, nil
}

func (r *fakeEventRepo) List(context.Context, event.ListFilter) ([]*event.Event, int64, error) {
	return nil, 0, nil
}

func (r *fakeEventRepo) Update(context.Context, *event.Event) error { return nil }
func (r *fakeEventRepo) Delete(context.Context, uuid.UUID) error    { return nil }

type notifierSpy struct {
	accountIDs []uuid.UUID
	regs       []*registration.Registration
}

func (n *notifierSpy) NotifyRegistrationUpdated(accountID uuid.UUID, reg *registration.Registration) {
	n.accountIDs = append(n.accountIDs, accountID)
	n.regs = append(n.regs, reg)
}

// ---- helpers ----

type fixture struct {
	svc       *RegistrationService
	regs      *fakeRegistrationRepo
	notifier  *notifierSpy
	accountID uuid.UUID
	eventID   uuid.UUID
}

func setup(t *testing.T) *fixture {
	t.Helper()

	accountID := uuid.New()
	eventID := uuid.New()

	regs := newFakeRegistrationRepo()
	accounts := &fakeAccountRepo{known: map[uuid.UUID]bool{accountID: true}}
	events := &fakeEventRepo{known: map[uuid.UUID]bool{eventID: true}}
	notifier := &notifierSpy{}

	svc := NewRegistrationService(regs, accounts, events, notifier, zap.NewNop())
	return &fixture{svc: svc, regs: regs, notifier: notifier, accountID: accountID, eventID: eventID}
}

func (f *fixture) assign(t *testing.T) *registration.Registration {
	t.Helper()
	reg, err := f.svc.Assign(context.Background(), &registration.CreateRequest{
		AccountID: f.accountID.String(),
		EventID:   f.eventID.String(),
	})
	require.NoError(t, err)
	return reg
}

// ---- tests ----

func TestAssign(t *testing.T) {
	f := setup(t)

	reg := f.assign(t)
	require.Equal(t, registration.StatusPending, reg.Status)
	require.Equal(t, f.accountID, reg.AccountID)
	require.Equal(t, f.eventID, reg.EventID)
	require.NotEqual(t, uuid.Nil, reg.ID)
}

func TestAssignUnknownAccount(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Assign(context.Background(), &registration.CreateRequest{
		AccountID: uuid.New().String(),
		EventID:   f.eventID.String(),
	})
	require.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestAssignUnknownEvent(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Assign(context.Background(), &registration.CreateRequest{
		AccountID: f.accountID.String(),
		EventID:   uuid.New().String(),
	})
	require.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestAssignInvalidIDs(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Assign(context.Background(), &registration.CreateRequest{
		AccountID: "not-a-uuid",
		EventID:   f.eventID.String(),
	})
	require.ErrorIs(t, err, xerrors.ErrInvalidInput)
}

func TestAssignDuplicate(t *testing.T) {
	f := setup(t)
	f.assign(t)

	_, err := f.svc.Assign(context.Background(), &registration.CreateRequest{
		AccountID: f.accountID.String(),
		EventID:   f.eventID.String(),
	})
	require.ErrorIs(t, err, xerrors.ErrDuplicateEntry)
}

func TestUpdateStatusNotifies(t *testing.T) {
	f := setup(t)
	reg := f.assign(t)

	updated, err := f.svc.UpdateStatus(context.Background(), reg.ID, &registration.UpdateStatusRequest{
		Status: "Completed",
	})
	require.NoError(t, err)
	require.Equal(t, registration.StatusCompleted, updated.Status)

	require.Len(t, f.notifier.accountIDs, 1)
	require.Equal(t, f.accountID, f.notifier.accountIDs[0])
	require.Equal(t, registration.StatusCompleted, f.notifier.regs[0].Status)
}

func TestUpdateStatusUnknownValue(t *testing.T) {
	f := setup(t)
	reg := f.assign(t)

	_, err := f.svc.UpdateStatus(context.Background(), reg.ID, &registration.UpdateStatusRequest{
		Status: "Cancelled",
	})
	require.ErrorIs(t, err, xerrors.ErrInvalidInput)
	require.Empty(t, f.notifier.accountIDs)
}

func TestUpdateStatusMissingRegistration(t *testing.T) {
	f := setup(t)

	_, err := f.svc.UpdateStatus(context.Background(), uuid.New(), &registration.UpdateStatusRequest{
		Status: "Completed",
	})
	require.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestRemove(t *testing.T) {
	f := setup(t)
	reg := f.assign(t)

	require.NoError(t, f.svc.Remove(context.Background(), reg.ID))

	_, err := f.regs.FindByID(context.Background(), reg.ID)
	require.ErrorIs(t, err, xerrors.ErrNotFound)

	require.ErrorIs(t, f.svc.Remove(context.Background(), reg.ID), xerrors.ErrNotFound)
}
