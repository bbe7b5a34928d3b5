package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumib/salon-booking-service/internal/domain"
	"github.com/lumib/salon-booking-service/internal/infra/sessionstore"
	"github.com/lumib/salon-booking-service/internal/integrations/catalogservice"
	"github.com/lumib/salon-booking-service/internal/service/cart/models"
	"github.com/lumib/salon-booking-service/pkg/ptr"
	"github.com/lumib/salon-booking-service/pkg/types"
)

type memorySessionStore struct {
	states  map[string]*sessionstore.State
	loadErr error
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{states: make(map[string]*sessionstore.State)}
}

func (m *memorySessionStore) Load(_ context.Context, sessionID string) (*sessionstore.State, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if state, ok := m.states[sessionID]; ok {
		copied := *state
		copied.Cart.Items = append([]domain.CartItem(nil), state.Cart.Items...)
		return &copied, nil
	}
	return &sessionstore.State{}, nil
}

func (m *memorySessionStore) Save(_ context.Context, sessionID string, state *sessionstore.State) error {
	copied := *state
	m.states[sessionID] = &copied
	return nil
}

type fakeCatalog struct {
	services map[string]*catalogservice.Service
}

func (f *fakeCatalog) GetService(_ context.Context, serviceID string) (*catalogservice.Service, error) {
	service, ok := f.services[serviceID]
	if !ok {
		return nil, catalogservice.ErrServiceNotFound
	}
	return service, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *memorySessionStore) {
	sessions := newMemorySessionStore()
	catalog := &fakeCatalog{services: map[string]*catalogservice.Service{
		"svc-1": {ID: "svc-1", Name: "Manicure", Price: 3500},
		"svc-2": {ID: "svc-2", Name: "Pedicure", Price: 4200},
	}}
	return NewService(sessions, catalog, nopLogger{}), sessions
}

func seedCart(sessions *memorySessionStore, items ...domain.CartItem) {
	sessions.states["sess-1"] = &sessionstore.State{Cart: domain.Cart{Items: items}}
}

func manicureItem() domain.CartItem {
	return domain.CartItem{
		ID:          "item-1",
		ServiceID:   "svc-1",
		ServiceName: "Manicure",
		Price:       3500,
		Date:        "2026-09-20",
		TimeLabel:   "1:30 PM",
		PhotoURLs:   []string{"https://cdn.example.com/nails.jpg"},
	}
}

func TestGet_EmptyCart(t *testing.T) {
	svc, _ := newTestService()

	view, err := svc.Get(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Zero(t, view.Count)
	assert.Zero(t, view.TotalPrice)
	assert.Empty(t, view.Items)
}

func TestGet_AggregatesItems(t *testing.T) {
	svc, sessions := newTestService()
	second := manicureItem()
	second.ID = "item-2"
	second.ServiceID = "svc-2"
	second.ServiceName = "Pedicure"
	second.Price = 4200
	seedCart(sessions, manicureItem(), second)

	view, err := svc.Get(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Equal(t, 2, view.Count)
	assert.Equal(t, int64(7700), view.TotalPrice)
	assert.Equal(t, "Manicure", view.Items[0].ServiceName)
	assert.Equal(t, "1:30 PM", view.Items[0].TimeLabel)
}

func TestRemove(t *testing.T) {
	svc, sessions := newTestService()
	seedCart(sessions, manicureItem())

	view, err := svc.Remove(context.Background(), "sess-1", "item-1")

	require.NoError(t, err)
	assert.Zero(t, view.Count)

	_, err = svc.Remove(context.Background(), "sess-1", "item-1")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdate_DateAndTimeKeepSnapshots(t *testing.T) {
	svc, sessions := newTestService()
	seedCart(sessions, manicureItem())

	view, err := svc.Update(context.Background(), "sess-1", "item-1", &models.ItemPatch{
		Date:      ptr.Ptr("2026-09-25"),
		TimeLabel: ptr.Ptr(types.TimeLabel("3:00 PM")),
	})

	require.NoError(t, err)
	item := view.Items[0]
	assert.Equal(t, "2026-09-25", item.Date)
	assert.Equal(t, "3:00 PM", item.TimeLabel)
	// Rescheduling never touches the price snapshot
	assert.Equal(t, "Manicure", item.ServiceName)
	assert.Equal(t, int64(3500), item.Price)
}

func TestUpdate_ServiceChangeRefreshesSnapshots(t *testing.T) {
	svc, sessions := newTestService()
	seedCart(sessions, manicureItem())

	view, err := svc.Update(context.Background(), "sess-1", "item-1", &models.ItemPatch{
		ServiceID: ptr.Ptr("svc-2"),
	})

	require.NoError(t, err)
	item := view.Items[0]
	assert.Equal(t, "svc-2", item.ServiceID)
	assert.Equal(t, "Pedicure", item.ServiceName)
	assert.Equal(t, int64(4200), item.Price)
	assert.Equal(t, "2026-09-20", item.Date, "schedule survives the service change")
}

func TestUpdate_UnknownServiceRejected(t *testing.T) {
	svc, sessions := newTestService()
	seedCart(sessions, manicureItem())

	_, err := svc.Update(context.Background(), "sess-1", "item-1", &models.ItemPatch{
		ServiceID: ptr.Ptr("svc-missing"),
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdate_ValidatesFormats(t *testing.T) {
	svc, sessions := newTestService()
	seedCart(sessions, manicureItem())

	_, err := svc.Update(context.Background(), "sess-1", "item-1", &models.ItemPatch{
		Date: ptr.Ptr("25/09/2026"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), "sess-1", "item-1", &models.ItemPatch{
		TimeLabel: ptr.Ptr(types.TimeLabel("9:00 AM")),
	})
	assert.ErrorIs(t, err, ErrUnknownTimeSlot)

	_, err = svc.Update(context.Background(), "sess-1", "item-1", &models.ItemPatch{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_MissingItemRejected(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), "sess-1", "item-404", &models.ItemPatch{
		Date: ptr.Ptr("2026-09-25"),
	})

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestGet_SessionLoadFailureSurfacesAsInternal(t *testing.T) {
	svc, sessions := newTestService()
	sessions.loadErr = errors.New("redis down")

	_, err := svc.Get(context.Background(), "sess-1")

	assert.ErrorIs(t, err, ErrInternal)
}
