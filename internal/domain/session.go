package domain

import "context"

type ContextKey string

const SessionContextKey ContextKey = "session"

// NoResultsMessage is shown when a revealed search matches nothing.
const NoResultsMessage = "No products found. Try a different search term."

// SearchState is the UI state of one page view.
type SearchState struct {
	Query            string `json:"query"`
	IsDarkMode       bool   `json:"isDarkMode"`
	IsSearchRevealed bool   `json:"isSearchRevealed"`
}

// SetQuery replaces the query verbatim. No trimming is applied.
func (s *SearchState) SetQuery(text string) {
	s.Query = text
}

// Reveal makes the results area visible. There is no way back.
func (s *SearchState) Reveal() {
	s.IsSearchRevealed = true
}

func (s *SearchState) ToggleTheme(enabled bool) {
	s.IsDarkMode = enabled
}

// FlipTheme switches to the opposite of the current mode.
func (s *SearchState) FlipTheme() {
	s.IsDarkMode = !s.IsDarkMode
}

// PageView is everything the landing page needs to render one state.
type PageView struct {
	SessionID string      `json:"-"`
	State     SearchState `json:"state"`
	Products  []Product   `json:"products"`
	// ShowResults is true once the search section has been revealed.
	ShowResults bool `json:"showResults"`
	// ShowEmpty is the "no results" display mode: revealed and nothing matched.
	ShowEmpty bool   `json:"showEmpty"`
	Message   string `json:"message,omitempty"`
}

// --- Interfaces ---

type SessionRepository interface {
	Create(ctx context.Context) (string, SearchState, error)
	Get(ctx context.Context, id string) (SearchState, error)
	// Update applies fn to the stored state atomically and returns the result.
	Update(ctx context.Context, id string, fn func(*SearchState)) (SearchState, error)
	Count() int
}

type SessionUsecase interface {
	// Resolve returns the session for id, starting a new one when id is
	// empty, unknown or expired. The returned id may differ from the input.
	Resolve(ctx context.Context, id string) (string, SearchState, error)
	SetQuery(ctx context.Context, id, query string) (SearchState, error)
	Reveal(ctx context.Context, id string) (SearchState, error)
	ToggleTheme(ctx context.Context, id string, enabled bool) (SearchState, error)
	FlipTheme(ctx context.Context, id string) (SearchState, error)
	View(ctx context.Context, id string) (PageView, error)
	ActiveSessions() int
}
