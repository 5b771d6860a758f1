package memoryrepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"productpuppy/internal/domain"
	"productpuppy/pkg/cache"

	"github.com/google/uuid"
)

const sessionKeyPrefix = "session:"

type sessionRepository struct {
	// mu serializes read-modify-write cycles; the cache itself is goroutine safe.
	mu    sync.Mutex
	store cache.CacheService
	ttl   time.Duration
}

// NewSessionRepository keeps page-view state in store. Every write pushes the
// expiry out by ttl, so a session lives as long as it is being used.
func NewSessionRepository(store cache.CacheService, ttl time.Duration) domain.SessionRepository {
	return &sessionRepository{
		store: store,
		ttl:   ttl,
	}
}

func (r *sessionRepository) Create(ctx context.Context) (string, domain.SearchState, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.SearchState{}, err
	}

	id := uuid.New().String()
	state := domain.SearchState{}
	r.store.Set(sessionKeyPrefix+id, state, r.ttl)
	return id, state, nil
}

func (r *sessionRepository) Get(ctx context.Context, id string) (domain.SearchState, error) {
	if err := ctx.Err(); err != nil {
		return domain.SearchState{}, err
	}

	val, found := r.store.Get(sessionKeyPrefix + id)
	if !found {
		return domain.SearchState{}, fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	return val.(domain.SearchState), nil
}

func (r *sessionRepository) Update(ctx context.Context, id string, fn func(*domain.SearchState)) (domain.SearchState, error) {
	if err := ctx.Err(); err != nil {
		return domain.SearchState{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := sessionKeyPrefix + id
	val, found := r.store.Get(key)
	if !found {
		return domain.SearchState{}, fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}

	state := val.(domain.SearchState)
	fn(&state)
	r.store.Set(key, state, r.ttl)
	return state, nil
}

func (r *sessionRepository) Count() int {
	return r.store.ItemCount()
}
