package memoryrepo

import (
	"context"
	"sync"
	"testing"
	"time"

	"productpuppy/internal/domain"
	"productpuppy/internal/infrastructure/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessions(ttl time.Duration) domain.SessionRepository {
	return NewSessionRepository(cache.NewMemoryCache(ttl, time.Minute), ttl)
}

func TestSessionCreateStartsWithDefaults(t *testing.T) {
	repo := newTestSessions(time.Minute)
	ctx := context.Background()

	id, state, err := repo.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, domain.SearchState{}, state)

	stored, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, state, stored)
	assert.Equal(t, 1, repo.Count())
}

func TestSessionUpdate(t *testing.T) {
	repo := newTestSessions(time.Minute)
	ctx := context.Background()
	id, _, err := repo.Create(ctx)
	require.NoError(t, err)

	state, err := repo.Update(ctx, id, func(s *domain.SearchState) {
		s.SetQuery("yoga")
		s.Reveal()
	})
	require.NoError(t, err)
	assert.Equal(t, "yoga", state.Query)
	assert.True(t, state.IsSearchRevealed)

	stored, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, state, stored)
}

func TestSessionUnknownAndExpired(t *testing.T) {
	repo := newTestSessions(20 * time.Millisecond)
	ctx := context.Background()

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = repo.Update(ctx, "missing", func(*domain.SearchState) {})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	id, _, err := repo.Create(ctx)
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)

	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestConcurrentUpdatesKeepReveal(t *testing.T) {
	repo := newTestSessions(time.Minute)
	ctx := context.Background()
	id, _, err := repo.Create(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = repo.Update(ctx, id, func(s *domain.SearchState) { s.SetQuery("coffee") })
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.Update(ctx, id, func(s *domain.SearchState) { s.Reveal() })
		}()
	}
	wg.Wait()

	state, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, state.IsSearchRevealed)
	assert.Equal(t, "coffee", state.Query)
}
