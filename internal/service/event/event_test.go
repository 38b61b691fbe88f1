package event

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"evently-service/internal/domain/category"
	"evently-service/internal/domain/event"
	"evently-service/internal/domain/registration"
	xerrors "evently-service/internal/pkg/errors"
)

// ---- fakes ----

type fakeEventRepo struct {
	byID       map[uuid.UUID]*event.Event
	listCalls  int
	lastFilter event.ListFilter
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[uuid.UUID]*event.Event)}
}

func (r *fakeEventRepo) Create(_ context.Context, e *event.Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id uuid.UUID) (*event.Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEventRepo) List(_ context.Context, filter event.ListFilter) ([]*event.Event, int64, error) {
	r.listCalls++
	r.lastFilter = filter
	var out []*event.Event
	for _, e := range r.byID {
		cp := *e
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEventRepo) Update(_ context.Context, e *event.Event) error {
	if _, ok := r.byID[e.ID]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeCategoryRepo struct {
	known map[uuid.UUID]bool
}

func (r *fakeCategoryRepo) Create(context.Context, *category.Category) error { return nil }

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	if !r.known[id] {
		return nil, xerrors.ErrNotFound
	}
	return &category.Category{ID: id, Name: "music"}, nil
}

func (r *fakeCategoryRepo) List(context.Context) ([]*category.Category, error) { return nil, nil }
func (r *fakeCategoryRepo) Delete(context.Context, uuid.UUID) error            { return nil }

type fakeRegistrationRepo struct {
	deletedEvents []uuid.UUID
}

func (r *fakeRegistrationRepo) Create(context.Context, *registration.Registration) error { return nil }

func (r *fakeRegistrationRepo) FindByID(context.Context, uuid.UUID) (*registration.Registration, error) {
	return nil, xerrors.ErrNotFound
}

func (r *fakeRegistrationRepo) ListByAccount(context.Context, uuid.UUID) ([]*registration.Registration, error) {
	return nil, nil
}

func (r *fakeRegistrationRepo) ListByEvent(context.Context, uuid.UUID) ([]*registration.Registration, error) {
	return nil, nil
}

func (r *fakeRegistrationRepo) UpdateStatus(context.Context, uuid.UUID, registration.Status, string) error {
	return nil
}

func (r *fakeRegistrationRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (r *fakeRegistrationRepo) DeleteByAccount(context.Context, uuid.UUID) error { return nil }

func (r *fakeRegistrationRepo) DeleteByEvent(_ context.Context, eventID uuid.UUID) error {
	r.deletedEvents = append(r.deletedEvents, eventID)
	return nil
}

// ---- helpers ----

type deps struct {
	events     *fakeEventRepo
	categories *fakeCategoryRepo
	regs       *fakeRegistrationRepo
	svc        *EventService
	categoryID uuid.UUID
}

func newDeps(t *testing.T) *deps {
	t.Helper()

	categoryID := uuid.New()
	events := newFakeEventRepo()
	categories := &fakeCategoryRepo{known: map[uuid.UUID]bool{categoryID: true}}
	regs := &fakeRegistrationRepo{}

	return &deps{
		events:     events,
		categories: categories,
		regs:       regs,
		svc:        NewEventService(events, categories, regs, zap.NewNop()),
		categoryID: categoryID,
	}
}

func createRequest(d *deps) *event.CreateRequest {
	start := time.Now().Add(24 * time.Hour)
	return &event.CreateRequest{
		Title:      "Go meetup",
		ImageURL:   "https://example.com/banner.png",
		StartTime:  start,
		EndTime:    start.Add(2 * time.Hour),
		IsFree:     true,
		CategoryID: d.categoryID.String(),
	}
}

// ---- tests ----

func TestListRejectsMalformedCategoryFilter(t *testing.T) {
	d := newDeps(t)

	_, _, err := d.svc.List(context.Background(), event.ListFilter{CategoryID: "not-a-uuid"})
	require.ErrorIs(t, err, xerrors.ErrInvalidInput)
	// The malformed value must never reach the repository query.
	require.Zero(t, d.events.listCalls)
}

func TestListClampsPagination(t *testing.T) {
	d := newDeps(t)

	_, _, err := d.svc.List(context.Background(), event.ListFilter{
		CategoryID: d.categoryID.String(),
		Limit:      -5,
		Offset:     -3,
	})
	require.NoError(t, err)
	require.Equal(t, 1, d.events.listCalls)
	require.Equal(t, 20, d.events.lastFilter.Limit)
	require.Equal(t, 0, d.events.lastFilter.Offset)
	require.Equal(t, d.categoryID.String(), d.events.lastFilter.CategoryID)
}

func TestCreateDefaultsSlots(t *testing.T) {
	d := newDeps(t)

	e, err := d.svc.Create(context.Background(), createRequest(d), uuid.New())
	require.NoError(t, err)
	require.Equal(t, defaultSlots, e.Slots)
	require.Equal(t, d.categoryID, e.CategoryID)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	d := newDeps(t)

	req := createRequest(d)
	req.CategoryID = uuid.New().String()

	_, err := d.svc.Create(context.Background(), req, uuid.New())
	require.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestCreateRejectsEndBeforeStart(t *testing.T) {
	d := newDeps(t)

	req := createRequest(d)
	req.EndTime = req.StartTime.Add(-time.Hour)

	_, err := d.svc.Create(context.Background(), req, uuid.New())
	require.ErrorIs(t, err, xerrors.ErrInvalidInput)
}

func TestDeleteRemovesRegistrationsFirst(t *testing.T) {
	d := newDeps(t)

	e, err := d.svc.Create(context.Background(), createRequest(d), uuid.New())
	require.NoError(t, err)

	require.NoError(t, d.svc.Delete(context.Background(), e.ID))
	require.Equal(t, []uuid.UUID{e.ID}, d.regs.deletedEvents)

	_, err = d.svc.Get(context.Background(), e.ID)
	require.ErrorIs(t, err, xerrors.ErrNotFound)
}
