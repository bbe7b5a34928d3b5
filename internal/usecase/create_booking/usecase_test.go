package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumib/salon-booking-service/internal/domain"
	"github.com/lumib/salon-booking-service/internal/infra/sessionstore"
	"github.com/lumib/salon-booking-service/internal/integrations/catalogservice"
	"github.com/lumib/salon-booking-service/internal/integrations/notifyservice"
	"github.com/lumib/salon-booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	fetchErr  error
	createErr error

	created []*domain.Booking
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.existing, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *booking
	created.ID = int64(len(f.created) + 1)
	created.CreatedAt = time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = append(f.created, &created)
	return &created, nil
}

type fakeBlackoutRepo struct {
	blackedOut bool
	err        error
}

func (f *fakeBlackoutRepo) IsBlackedOut(_ context.Context, _ string, _ time.Time) (bool, error) {
	return f.blackedOut, f.err
}

type fakeCatalog struct {
	services map[string]*catalogservice.Service
	err      error

	calls int
}

func (f *fakeCatalog) GetService(_ context.Context, serviceID string) (*catalogservice.Service, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	service, ok := f.services[serviceID]
	if !ok {
		return nil, catalogservice.ErrServiceNotFound
	}
	return service, nil
}

type fakeNotify struct {
	err  error
	sent []notifyservice.BookingConfirmation
}

func (f *fakeNotify) SendBookingConfirmation(_ context.Context, confirmation notifyservice.BookingConfirmation) error {
	f.sent = append(f.sent, confirmation)
	return f.err
}

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
		return &copied, nil
	}
	return &sessionstore.State{}, nil
}

func (m *memorySessionStore) Save(_ context.Context, sessionID string, state *sessionstore.State) error {
	copied := *state
	m.states[sessionID] = &copied
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	repo     *fakeBookingRepo
	blackout *fakeBlackoutRepo
	catalog  *fakeCatalog
	notify   *fakeNotify
	sessions *memorySessionStore
	tx       *fakeTxManager
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		repo:     &fakeBookingRepo{},
		blackout: &fakeBlackoutRepo{},
		catalog: &fakeCatalog{services: map[string]*catalogservice.Service{
			"svc-1": {ID: "svc-1", Name: "Manicure", Price: 3500},
		}},
		notify:   &fakeNotify{},
		sessions: newMemorySessionStore(),
		tx:       &fakeTxManager{},
	}
	f.uc = NewUseCase(f.repo, f.blackout, f.catalog, f.notify, f.sessions, f.tx, nopLogger{})
	f.uc.timeProvider = &fixedTime{now: now}
	return f
}

var testNow = time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)

func directRequest() *Request {
	return &Request{
		SessionID: "sess-1",
		ServiceID: "svc-1",
		Date:      time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		TimeLabel: "10:00 AM",
	}
}

func TestExecute_CreatesConfirmedBookingWithSnapshots(t *testing.T) {
	f := newFixture(testNow)

	resp, err := f.uc.Execute(context.Background(), directRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "svc-1", resp.ServiceID)
	assert.Equal(t, "Manicure", resp.ServiceName)
	assert.Equal(t, int64(3500), resp.ServicePrice)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 1, f.tx.calls, "check and insert must share one transaction")

	require.Len(t, f.notify.sent, 1)
	assert.Equal(t, int64(1), f.notify.sent[0].BookingID)
	assert.Equal(t, "2026-09-15", f.notify.sent[0].Date)
}

func TestExecute_IncompleteSelectionNeverReachesDownstream(t *testing.T) {
	f := newFixture(testNow)

	req := directRequest()
	req.TimeLabel = ""
	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrIncompleteSelection)
	assert.Zero(t, f.catalog.calls, "catalog must not be called")
	assert.Zero(t, f.tx.calls, "no transaction must start")
	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.notify.sent)
}

func TestExecute_UnknownServiceIsRejected(t *testing.T) {
	f := newFixture(testNow)

	req := directRequest()
	req.ServiceID = "svc-missing"
	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Empty(t, f.repo.created)
}

func TestExecute_PastDateIsRejected(t *testing.T) {
	f := newFixture(testNow)

	req := directRequest()
	req.Date = time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ElapsedSlotTodayIsRejected(t *testing.T) {
	f := newFixture(testNow) // 9:00 AM

	req := directRequest()
	req.Date = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	req.TimeLabel = "8:30 AM"
	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTimePassed)
}

func TestExecute_UnknownTimeSlotIsRejected(t *testing.T) {
	f := newFixture(testNow)

	req := directRequest()
	req.TimeLabel = "9:00 AM"
	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrUnknownTimeSlot)
}

func TestExecute_BlackoutDateIsRejected(t *testing.T) {
	f := newFixture(testNow)
	f.blackout.blackedOut = true

	_, err := f.uc.Execute(context.Background(), directRequest())

	assert.ErrorIs(t, err, ErrDateUnavailable)
	assert.Empty(t, f.repo.created)
}

func TestExecute_SlotTakenInsideTransaction(t *testing.T) {
	f := newFixture(testNow)
	f.repo.existing = []*domain.Booking{{
		ServiceID: "svc-1",
		Date:      time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		TimeLabel: "10:00 AM",
		Status:    domain.StatusConfirmed,
	}}

	_, err := f.uc.Execute(context.Background(), directRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.notify.sent)
}

func TestExecute_DayAtCapacityIsRejected(t *testing.T) {
	f := newFixture(testNow)
	for i := 0; i < domain.DailyCapacity; i++ {
		f.repo.existing = append(f.repo.existing, &domain.Booking{
			ServiceID: "svc-other",
			Date:      time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
			TimeLabel: domain.DefaultSlotLabels[i],
			Status:    domain.StatusConfirmed,
		})
	}

	_, err := f.uc.Execute(context.Background(), directRequest())

	assert.ErrorIs(t, err, ErrDayFullyBooked)
	assert.Empty(t, f.repo.created)
}

func TestExecute_CancelledBookingsFreeTheirSlots(t *testing.T) {
	f := newFixture(testNow)
	cancelled := &domain.Booking{
		ServiceID: "svc-1",
		Date:      time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		TimeLabel: "10:00 AM",
		Status:    domain.StatusCancelled,
	}
	f.repo.existing = []*domain.Booking{cancelled}

	_, err := f.uc.Execute(context.Background(), directRequest())

	require.NoError(t, err)
	assert.Len(t, f.repo.created, 1)
}

func TestExecute_NotificationFailureDoesNotRollBack(t *testing.T) {
	f := newFixture(testNow)
	f.notify.err = errors.New("notify unavailable")

	resp, err := f.uc.Execute(context.Background(), directRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Len(t, f.repo.created, 1)
}

func TestExecute_CartItemPathRemovesItemAfterBooking(t *testing.T) {
	f := newFixture(testNow)
	f.sessions.states["sess-1"] = &sessionstore.State{Cart: domain.Cart{Items: []domain.CartItem{{
		ID:          "item-1",
		ServiceID:   "svc-1",
		ServiceName: "Manicure",
		Price:       3500,
		Date:        "2026-09-15",
		TimeLabel:   "10:00 AM",
	}}}}

	resp, err := f.uc.Execute(context.Background(), &Request{
		SessionID:  "sess-1",
		CartItemID: ptr.Ptr("item-1"),
	})

	require.NoError(t, err)
	assert.Equal(t, "svc-1", resp.ServiceID)
	assert.Equal(t, "10:00 AM", resp.TimeLabel.String())

	state, err := f.sessions.Load(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Zero(t, state.Cart.Count(), "submitted item must leave the cart")
}

func TestExecute_MissingCartItemIsRejected(t *testing.T) {
	f := newFixture(testNow)

	_, err := f.uc.Execute(context.Background(), &Request{
		SessionID:  "sess-1",
		CartItemID: ptr.Ptr("item-missing"),
	})

	assert.ErrorIs(t, err, ErrCartItemNotFound)
}
