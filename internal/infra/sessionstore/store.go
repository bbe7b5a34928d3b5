package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lumib/salon-booking-service/internal/domain"
)

const keyPrefix = "session:"

// State is a browsing session's draft and cart. It is held as one value
// so the commit-and-reset transition is a single write: the cart append
// and the draft reset land together or not at all.
type State struct {
	Draft domain.DraftSelection `json:"draft"`
	Cart  domain.Cart           `json:"cart"`
}

// Store keeps per-session draft and cart state in Redis with a TTL.
// Reads and writes are last-write-wins; there is no cross-request locking.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a session store over a Redis client
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Connect opens a Redis client and verifies the connection
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// Load fetches the session state, returning a fresh empty state when the
// session is unknown or expired
func (s *Store) Load(ctx context.Context, sessionID string) (*State, error) {
	raw, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return &State{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load session %s: %v", ErrStore, sessionID, err)
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("%w: session %s: %v", ErrDecode, sessionID, err)
	}
	return &state, nil
}

// Save writes the session state back and refreshes its TTL
func (s *Store) Save(ctx context.Context, sessionID string, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: session %s: %v", ErrEncode, sessionID, err)
	}

	if err := s.client.Set(ctx, keyPrefix+sessionID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: save session %s: %v", ErrStore, sessionID, err)
	}
	return nil
}
