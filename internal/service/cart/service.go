package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lumib/salon-booking-service/internal/domain"
	"github.com/lumib/salon-booking-service/internal/infra/sessionstore"
	catalogClient "github.com/lumib/salon-booking-service/internal/integrations/catalogservice"
	"github.com/lumib/salon-booking-service/internal/service/cart/models"
)

// Service manages the session's cart of queued selections. Item
// snapshots taken at queue time are immutable except through explicit
// edits; replacing an item's service re-snapshots its name and price.
type Service struct {
	sessions SessionStore
	catalog  CatalogClient
	logger   Logger
}

// NewService creates the cart service
func NewService(sessions SessionStore, catalog CatalogClient, logger Logger) *Service {
	return &Service{
		sessions: sessions,
		catalog:  catalog,
		logger:   logger,
	}
}

// Get returns the aggregate cart view for the session
func (s *Service) Get(ctx context.Context, sessionID string) (*models.CartView, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	view := models.FromCart(&state.Cart)
	return &view, nil
}

// Remove deletes the item with the given id from the cart
func (s *Service) Remove(ctx context.Context, sessionID, itemID string) (*models.CartView, error) {
	if itemID == "" {
		return nil, fmt.Errorf("%w: itemID is required", ErrInvalidInput)
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !state.Cart.Remove(itemID) {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}

	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	s.logger.Info("Cart: session=%s removed item %s (cart size %d)", sessionID, itemID, state.Cart.Count())
	view := models.FromCart(&state.Cart)
	return &view, nil
}

// Update applies a partial edit to a queued item. Date and time changes
// keep the original snapshots; a service change re-resolves the catalog
// and refreshes the name and price snapshots.
func (s *Service) Update(ctx context.Context, sessionID, itemID string, patch *models.ItemPatch) (*models.CartView, error) {
	if itemID == "" {
		return nil, fmt.Errorf("%w: itemID is required", ErrInvalidInput)
	}
	if patch == nil || patch.IsEmpty() {
		return nil, fmt.Errorf("%w: empty patch", ErrInvalidInput)
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item := state.Cart.Find(itemID)
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}

	if patch.ServiceID != nil && *patch.ServiceID != item.ServiceID {
		service, err := s.catalog.GetService(ctx, *patch.ServiceID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrServiceNotFound) {
				return nil, ErrServiceNotFound
			}
			s.logger.Error("Cart: failed to resolve service %s: %v", *patch.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to resolve service: %v", ErrInternal, err)
		}
		item.ServiceID = service.ID
		item.ServiceName = service.Name
		item.Price = service.Price
	}
	if patch.Date != nil {
		item.Date = *patch.Date
	}
	if patch.TimeLabel != nil {
		item.TimeLabel = *patch.TimeLabel
	}
	if patch.PhotoURLs != nil {
		if len(*patch.PhotoURLs) > domain.MaxDraftPhotos {
			return nil, fmt.Errorf("%w: at most %d photos", ErrInvalidInput, domain.MaxDraftPhotos)
		}
		item.PhotoURLs = *patch.PhotoURLs
	}

	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	s.logger.Info("Cart: session=%s updated item %s", sessionID, itemID)
	view := models.FromCart(&state.Cart)
	return &view, nil
}

// validatePatch checks the formats of the fields carried by the patch
func validatePatch(patch *models.ItemPatch) error {
	if patch.ServiceID != nil && *patch.ServiceID == "" {
		return fmt.Errorf("%w: serviceID cannot be empty", ErrInvalidInput)
	}
	if patch.Date != nil {
		if _, err := time.Parse(domain.DateFormat, *patch.Date); err != nil {
			return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
		}
	}
	if patch.TimeLabel != nil && !domain.IsKnownSlotLabel(domain.DefaultSlotLabels, *patch.TimeLabel) {
		return fmt.Errorf("%w: %s", ErrUnknownTimeSlot, *patch.TimeLabel)
	}
	return nil
}

func (s *Service) load(ctx context.Context, sessionID string) (*sessionstore.State, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		s.logger.Error("Cart: failed to load session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}
	return state, nil
}

func (s *Service) save(ctx context.Context, sessionID string, state *sessionstore.State) error {
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		s.logger.Error("Cart: failed to save session %s: %v", sessionID, err)
		return fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
	}
	return nil
}
