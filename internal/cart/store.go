package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	redisclient "github.com/healthybite-ma/storefront-backend/pkg/redis"
)

type snapshotStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type snapshotKeyer interface {
	CartKey(sessionID string) string
}

// Store persists cart snapshots in Redis, one JSON blob per session token.
// A missing snapshot reads back as an empty cart.
type Store struct {
	store snapshotStore
	keyer snapshotKeyer
	ttl   time.Duration
}

// NewStore builds the snapshot store on the shared Redis client.
func NewStore(client *redisclient.Client, ttl time.Duration) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("snapshot ttl must be positive")
	}
	return &Store{store: client, keyer: client, ttl: ttl}, nil
}

// Load reads the snapshot for the session token. Missing or unreadable
// snapshots yield an empty cart rather than an error; a corrupt blob is not
// worth failing a storefront request over.
func (s *Store) Load(ctx context.Context, sessionID string) (State, error) {
	var state State
	raw, err := s.store.Get(ctx, s.keyer.CartKey(sessionID))
	if err != nil {
		if redisclient.IsNil(err) {
			return state, nil
		}
		return state, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart snapshot")
	}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return State{}, nil
	}
	return state, nil
}

// Save writes the snapshot back under the session token, refreshing the TTL.
func (s *Store) Save(ctx context.Context, sessionID string, state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding cart snapshot")
	}
	if err := s.store.Set(ctx, s.keyer.CartKey(sessionID), payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart snapshot")
	}
	return nil
}

// Delete drops the snapshot entirely.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.store.Del(ctx, s.keyer.CartKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting cart snapshot")
	}
	return nil
}
