package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"productpuppy/internal/domain"
	"productpuppy/internal/infrastructure/cache"
	memoryrepo "productpuppy/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionUsecase(ttl time.Duration) domain.SessionUsecase {
	products := memoryrepo.NewProductRepository()
	search := NewSearchUsecase(products, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute, time.Second)
	sessions := memoryrepo.NewSessionRepository(cache.NewMemoryCache(ttl, time.Minute), ttl)
	return NewSessionUsecase(sessions, search)
}

func TestResolveCreatesAndReuses(t *testing.T) {
	uc := newSessionUsecase(time.Minute)
	ctx := context.Background()

	id, state, err := uc.Resolve(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, domain.SearchState{}, state)

	same, _, err := uc.Resolve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, same)

	other, _, err := uc.Resolve(ctx, "unknown-id")
	require.NoError(t, err)
	assert.NotEqual(t, "unknown-id", other)
	assert.Equal(t, 2, uc.ActiveSessions())
}

func TestViewHidesResultsUntilRevealed(t *testing.T) {
	uc := newSessionUsecase(time.Minute)
	ctx := context.Background()
	id, _, err := uc.Resolve(ctx, "")
	require.NoError(t, err)

	_, err = uc.SetQuery(ctx, id, "xyz123")
	require.NoError(t, err)

	view, err := uc.View(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, view.Products)
	assert.False(t, view.ShowResults)
	assert.False(t, view.ShowEmpty)
	assert.Empty(t, view.Message)

	_, err = uc.Reveal(ctx, id)
	require.NoError(t, err)

	view, err = uc.View(ctx, id)
	require.NoError(t, err)
	assert.True(t, view.ShowResults)
	assert.True(t, view.ShowEmpty)
	assert.Equal(t, "No products found. Try a different search term.", view.Message)
}

func TestSetQueryIdempotent(t *testing.T) {
	uc := newSessionUsecase(time.Minute)
	ctx := context.Background()
	id, _, err := uc.Resolve(ctx, "")
	require.NoError(t, err)

	_, err = uc.SetQuery(ctx, id, "COFFEE")
	require.NoError(t, err)
	once, err := uc.View(ctx, id)
	require.NoError(t, err)

	_, err = uc.SetQuery(ctx, id, "COFFEE")
	require.NoError(t, err)
	twice, err := uc.View(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"Coffee Maker"}, names(twice.Products))
}

func TestRevealSurvivesEveryOperation(t *testing.T) {
	uc := newSessionUsecase(time.Minute)
	ctx := context.Background()
	id, _, err := uc.Resolve(ctx, "")
	require.NoError(t, err)

	_, err = uc.Reveal(ctx, id)
	require.NoError(t, err)

	state, err := uc.SetQuery(ctx, id, "")
	require.NoError(t, err)
	assert.True(t, state.IsSearchRevealed)

	state, err = uc.ToggleTheme(ctx, id, true)
	require.NoError(t, err)
	assert.True(t, state.IsSearchRevealed)
	assert.True(t, state.IsDarkMode)

	state, err = uc.Reveal(ctx, id)
	require.NoError(t, err)
	assert.True(t, state.IsSearchRevealed)
}

func TestConcurrentFlipsAllApply(t *testing.T) {
	uc := newSessionUsecase(time.Minute)
	ctx := context.Background()
	id, _, err := uc.Resolve(ctx, "")
	require.NoError(t, err)

	const flips = 64
	var wg sync.WaitGroup
	for i := 0; i < flips; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.FlipTheme(ctx, id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// An even number of flips lands back on light mode.
	view, err := uc.View(ctx, id)
	require.NoError(t, err)
	assert.False(t, view.State.IsDarkMode)

	state, err := uc.FlipTheme(ctx, id)
	require.NoError(t, err)
	assert.True(t, state.IsDarkMode)
}

func TestOperationsOnMissingSession(t *testing.T) {
	uc := newSessionUsecase(time.Minute)
	ctx := context.Background()

	_, err := uc.SetQuery(ctx, "missing", "x")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = uc.View(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = uc.FlipTheme(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestBuildPageViewEmptyQueryShowsAll(t *testing.T) {
	c := catalog(t)
	state := domain.SearchState{IsSearchRevealed: true}

	view := BuildPageView("id", state, FilterProducts("", c))

	assert.Len(t, view.Products, 6)
	assert.True(t, view.ShowResults)
	assert.False(t, view.ShowEmpty)
}
