package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lumib/salon-booking-service/internal/domain"
	"github.com/lumib/salon-booking-service/internal/infra/sessionstore"
	catalogClient "github.com/lumib/salon-booking-service/internal/integrations/catalogservice"
	"github.com/lumib/salon-booking-service/internal/service/drafts/models"
	"github.com/lumib/salon-booking-service/pkg/ptr"
	"github.com/lumib/salon-booking-service/pkg/types"
)

// Service owns the session's draft selection state machine. Every
// mutation loads the session state, applies one change, evaluates the
// commit condition and writes the state back in a single save, so the
// queue-to-cart and draft reset land atomically.
type Service struct {
	sessions     SessionStore
	catalog      CatalogClient
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the draft selection service
func NewService(
	sessions SessionStore,
	catalog CatalogClient,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		sessions:     sessions,
		catalog:      catalog,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Get returns the current draft view for the session
func (s *Service) Get(ctx context.Context, sessionID string) (*models.DraftView, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	view := s.view(ctx, &state.Draft)
	return &view, nil
}

// SelectService sets the draft's service. Changing the service
// invalidates the slot context, so the held time is cleared; the day is
// kept.
func (s *Service) SelectService(ctx context.Context, sessionID, serviceID string) (*models.MutationResult, error) {
	if serviceID == "" {
		return nil, fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := s.resolveService(ctx, serviceID); err != nil {
		return nil, err
	}

	wasComplete := state.Draft.IsComplete()
	state.Draft.ServiceID = serviceID
	state.Draft.TimeLabel = ""

	s.logger.Info("Drafts: session=%s selected service=%s", sessionID, serviceID)
	return s.finish(ctx, sessionID, state, wasComplete)
}

// Seed applies an externally supplied service id (deep link). Unknown ids
// are ignored rather than rejected.
func (s *Service) Seed(ctx context.Context, sessionID, serviceID string) (*models.MutationResult, error) {
	if serviceID != "" {
		if _, err := s.resolveService(ctx, serviceID); err != nil {
			if errors.Is(err, ErrServiceNotFound) {
				s.logger.Info("Drafts: session=%s ignoring unknown seeded service=%s", sessionID, serviceID)
				state, loadErr := s.load(ctx, sessionID)
				if loadErr != nil {
					return nil, loadErr
				}
				view := s.view(ctx, &state.Draft)
				return &models.MutationResult{Draft: view, CartCount: state.Cart.Count()}, nil
			}
			return nil, err
		}
		return s.SelectService(ctx, sessionID, serviceID)
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	view := s.view(ctx, &state.Draft)
	return &models.MutationResult{Draft: view, CartCount: state.Cart.Count()}, nil
}

// SelectDay sets the selected day within the displayed month. A held
// time that is booked or already elapsed on the new date is dropped to
// force re-selection.
func (s *Service) SelectDay(ctx context.Context, sessionID string, day int) (*models.MutationResult, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if day < 1 || day > domain.DaysInMonth(state.Draft.Month, state.Draft.Year) {
		return nil, fmt.Errorf("%w: day %d", ErrInvalidDay, day)
	}

	wasComplete := state.Draft.IsComplete()
	state.Draft.Day = day
	s.clearStaleTime(ctx, state)

	s.logger.Info("Drafts: session=%s selected day=%d", sessionID, day)
	return s.finish(ctx, sessionID, state, wasComplete)
}

// SelectTime sets the selected slot label
func (s *Service) SelectTime(ctx context.Context, sessionID string, label types.TimeLabel) (*models.MutationResult, error) {
	if !domain.IsKnownSlotLabel(domain.DefaultSlotLabels, label) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTimeSlot, label)
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	wasComplete := state.Draft.IsComplete()
	state.Draft.TimeLabel = label

	s.logger.Info("Drafts: session=%s selected time=%s", sessionID, label)
	return s.finish(ctx, sessionID, state, wasComplete)
}

// AttachPhoto appends a reference photo URL to the draft
func (s *Service) AttachPhoto(ctx context.Context, sessionID, url string) (*models.MutationResult, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: photo URL is required", ErrInvalidInput)
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(state.Draft.PhotoURLs) >= domain.MaxDraftPhotos {
		return nil, ErrTooManyPhotos
	}

	wasComplete := state.Draft.IsComplete()
	state.Draft.PhotoURLs = append(state.Draft.PhotoURLs, url)

	return s.finish(ctx, sessionID, state, wasComplete)
}

// RemovePhoto drops the photo at the given index
func (s *Service) RemovePhoto(ctx context.Context, sessionID string, index int) (*models.MutationResult, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(state.Draft.PhotoURLs) {
		return nil, fmt.Errorf("%w: index %d", ErrPhotoNotFound, index)
	}

	wasComplete := state.Draft.IsComplete()
	state.Draft.PhotoURLs = append(state.Draft.PhotoURLs[:index], state.Draft.PhotoURLs[index+1:]...)

	return s.finish(ctx, sessionID, state, wasComplete)
}

// Navigate switches the displayed month. The slot context changes, so
// the held time is always cleared; the day jumps to today when the shown
// month is the real current one and is otherwise unset.
func (s *Service) Navigate(ctx context.Context, sessionID string, month, year int) (*models.MutationResult, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if year < 1970 || year > 9999 {
		return nil, fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	wasComplete := state.Draft.IsComplete()

	state.Draft.Month = time.Month(month)
	state.Draft.Year = year
	state.Draft.TimeLabel = ""
	if int(now.Month()) == month && now.Year() == year {
		state.Draft.Day = now.Day()
	} else {
		state.Draft.Day = 0
	}

	s.logger.Info("Drafts: session=%s navigated to %d-%02d, day=%d", sessionID, year, month, state.Draft.Day)
	return s.finish(ctx, sessionID, state, wasComplete)
}

// load fetches the session state and defaults the displayed month to the
// real current one for fresh sessions
func (s *Service) load(ctx context.Context, sessionID string) (*sessionstore.State, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		s.logger.Error("Drafts: failed to load session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}

	if state.Draft.Year == 0 {
		now := s.timeProvider.Now()
		state.Draft.Month = now.Month()
		state.Draft.Year = now.Year()
	}
	return state, nil
}

// finish evaluates the commit condition, saves the state once and builds
// the mutation result. The cart append and the draft reset share the
// same save, and the commit fires only on the incomplete-to-complete
// transition, never on repeated mutations of an already-complete draft.
func (s *Service) finish(ctx context.Context, sessionID string, state *sessionstore.State, wasComplete bool) (*models.MutationResult, error) {
	committed := false
	committedItemID := ""

	if !wasComplete && state.Draft.IsComplete() {
		itemID, err := s.commit(ctx, sessionID, state)
		if err != nil {
			// Nothing is saved: the stored draft stays incomplete, so
			// retrying the completing action re-runs the commit
			return nil, err
		}
		committed = true
		committedItemID = itemID
	}

	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		s.logger.Error("Drafts: failed to save session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
	}

	view := s.view(ctx, &state.Draft)
	return &models.MutationResult{
		Draft:           view,
		Committed:       committed,
		CommittedItemID: committedItemID,
		CartCount:       state.Cart.Count(),
	}, nil
}

// commit converts the completed draft into a cart item with name and
// price snapshots and resets the draft in the same state value
func (s *Service) commit(ctx context.Context, sessionID string, state *sessionstore.State) (string, error) {
	service, err := s.resolveService(ctx, state.Draft.ServiceID)
	if err != nil {
		return "", err
	}

	now := s.timeProvider.Now()
	date := state.Draft.Date()
	item := domain.CartItem{
		ID:          domain.NewCartItemID(service.ID, date, state.Draft.TimeLabel),
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Price:       service.Price,
		Date:        date,
		TimeLabel:   state.Draft.TimeLabel,
		PhotoURLs:   state.Draft.PhotoURLs,
		AddedAt:     now,
	}

	state.Cart.Add(item)
	state.Draft.Reset()

	s.logger.Info("Drafts: session=%s queued cart item %s (cart size %d)", sessionID, item.ID, state.Cart.Count())
	return item.ID, nil
}

// clearStaleTime drops a held time that became unavailable for the newly
// selected date, either because another reservation holds it or because
// its clock time has elapsed today. Occupancy lookup failures keep the
// time; the submission flow re-checks anyway.
func (s *Service) clearStaleTime(ctx context.Context, state *sessionstore.State) {
	draft := &state.Draft
	if draft.Day == 0 || draft.TimeLabel.IsZero() {
		return
	}

	date, err := time.Parse(domain.DateFormat, draft.Date())
	if err != nil {
		return
	}

	now := s.timeProvider.Now()
	if isSameDay(date, now) {
		if passed, err := draft.TimeLabel.AtOrBefore(now); err == nil && passed {
			s.logger.Info("Drafts: clearing elapsed time %s after date change", draft.TimeLabel)
			draft.TimeLabel = ""
			return
		}
	}

	if draft.ServiceID == "" {
		return
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		ServiceID:       ptr.Ptr(draft.ServiceID),
		StartDate:       &date,
		EndDate:         &date,
		IncludeInactive: false,
	})
	if err != nil {
		s.logger.Warn("Drafts: failed to check occupancy for %s, keeping held time: %v", draft.Date(), err)
		return
	}

	for _, booking := range bookings {
		if booking.IsActive() && booking.TimeLabel == draft.TimeLabel {
			s.logger.Info("Drafts: clearing booked time %s after date change", draft.TimeLabel)
			draft.TimeLabel = ""
			return
		}
	}
}

// resolveService maps catalog client errors into service errors
func (s *Service) resolveService(ctx context.Context, serviceID string) (*catalogClient.Service, error) {
	service, err := s.catalog.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Drafts: failed to resolve service %s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to resolve service: %v", ErrInternal, err)
	}
	return service, nil
}

// view resolves the selected service for display; resolution failures
// degrade to a view without the service record
func (s *Service) view(ctx context.Context, draft *domain.DraftSelection) models.DraftView {
	var service *catalogClient.Service
	if draft.ServiceID != "" {
		resolved, err := s.catalog.GetService(ctx, draft.ServiceID)
		if err != nil {
			s.logger.Warn("Drafts: failed to resolve service %s for view: %v", draft.ServiceID, err)
		} else {
			service = resolved
		}
	}
	return models.FromDraft(draft, service)
}

// isSameDay reports whether two instants fall on the same calendar day
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
