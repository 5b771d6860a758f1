package usecase

import (
	"context"
	"errors"
	"fmt"

	"productpuppy/internal/domain"
	"productpuppy/pkg/logger"
)

type sessionUsecase struct {
	sessions domain.SessionRepository
	search   domain.SearchUsecase
}

func NewSessionUsecase(sessions domain.SessionRepository, search domain.SearchUsecase) domain.SessionUsecase {
	return &sessionUsecase{
		sessions: sessions,
		search:   search,
	}
}

func (u *sessionUsecase) Resolve(ctx context.Context, id string) (string, domain.SearchState, error) {
	if id != "" {
		state, err := u.sessions.Get(ctx, id)
		if err == nil {
			return id, state, nil
		}
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return "", domain.SearchState{}, err
		}
		logger.WithContext(ctx).Debug().Str("session_id", id).Msg("Session expired, starting a new one")
	}

	newID, state, err := u.sessions.Create(ctx)
	if err != nil {
		return "", domain.SearchState{}, fmt.Errorf("create session: %w", err)
	}
	return newID, state, nil
}

func (u *sessionUsecase) SetQuery(ctx context.Context, id, query string) (domain.SearchState, error) {
	return u.sessions.Update(ctx, id, func(s *domain.SearchState) {
		s.SetQuery(query)
	})
}

func (u *sessionUsecase) Reveal(ctx context.Context, id string) (domain.SearchState, error) {
	return u.sessions.Update(ctx, id, func(s *domain.SearchState) {
		s.Reveal()
	})
}

func (u *sessionUsecase) ToggleTheme(ctx context.Context, id string, enabled bool) (domain.SearchState, error) {
	return u.sessions.Update(ctx, id, func(s *domain.SearchState) {
		s.ToggleTheme(enabled)
	})
}

func (u *sessionUsecase) FlipTheme(ctx context.Context, id string) (domain.SearchState, error) {
	return u.sessions.Update(ctx, id, func(s *domain.SearchState) {
		s.FlipTheme()
	})
}

func (u *sessionUsecase) View(ctx context.Context, id string) (domain.PageView, error) {
	state, err := u.sessions.Get(ctx, id)
	if err != nil {
		return domain.PageView{}, err
	}

	result, err := u.search.Search(ctx, state.Query)
	if err != nil {
		return domain.PageView{}, err
	}

	return BuildPageView(id, state, result.Products), nil
}

func (u *sessionUsecase) ActiveSessions() int {
	return u.sessions.Count()
}

// BuildPageView derives what the page shows from a state and its filtered products.
func BuildPageView(id string, state domain.SearchState, products []domain.Product) domain.PageView {
	view := domain.PageView{
		SessionID:   id,
		State:       state,
		Products:    products,
		ShowResults: state.IsSearchRevealed,
		ShowEmpty:   state.IsSearchRevealed && len(products) == 0,
	}
	if view.ShowEmpty {
		view.Message = domain.NoResultsMessage
	}
	return view
}
