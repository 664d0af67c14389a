package team

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of TeamStore for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	GetPlayersFunc      func() ([]Player, error)
	InsertPlayerFunc    func(player NewPlayer) (string, error)
	UpdatePlayerFunc    func(id string, update PlayerUpdate) error
	GetGamesFunc        func() ([]Game, error)
	InsertGameFunc      func(game NewGame) (string, error)
	UpdateGameFunc      func(id string, update GameUpdate) error
	GetNewsFunc         func() ([]NewsArticle, error)
	InsertNewsFunc      func(article NewNewsArticle) (string, error)
	GetTeamStatsFunc    func() (*TeamStatistics, error)
	GetTeamBrandingFunc func() (*TeamBranding, error)
	SetBrandingLogoFunc func(id, logoURL string) error

	// Call counters per method name
	Calls map[string]int
}

// NewMock creates a new mock TeamStore.
func NewMock() *MockStore {
	return &MockStore{Calls: make(map[string]int)}
}

func (m *MockStore) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls[method]++
}

// CallCount returns how many times the named method was invoked.
func (m *MockStore) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[method]
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = make(map[string]int)
}

func (m *MockStore) GetPlayers(context.Context) ([]Player, error) {
	m.record("GetPlayers")
	if m.GetPlayersFunc != nil {
		return m.GetPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) InsertPlayer(_ context.Context, player NewPlayer) (string, error) {
	m.record("InsertPlayer")
	if m.InsertPlayerFunc != nil {
		return m.InsertPlayerFunc(player)
	}
	return "mock-player", nil
}

func (m *MockStore) UpdatePlayer(_ context.Context, id string, update PlayerUpdate) error {
	m.record("UpdatePlayer")
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(id, update)
	}
	return nil
}

func (m *MockStore) GetGames(context.Context) ([]Game, error) {
	m.record("GetGames")
	if m.GetGamesFunc != nil {
		return m.GetGamesFunc()
	}
	return nil, nil
}

func (m *MockStore) InsertGame(_ context.Context, game NewGame) (string, error) {
	m.record("InsertGame")
	if m.InsertGameFunc != nil {
		return m.InsertGameFunc(game)
	}
	return "mock-game", nil
}

func (m *MockStore) UpdateGame(_ context.Context, id string, update GameUpdate) error {
	m.record("UpdateGame")
	if m.UpdateGameFunc != nil {
		return m.UpdateGameFunc(id, update)
	}
	return nil
}

func (m *MockStore) GetNews(context.Context) ([]NewsArticle, error) {
	m.record("GetNews")
	if m.GetNewsFunc != nil {
		return m.GetNewsFunc()
	}
	return nil, nil
}

func (m *MockStore) InsertNews(_ context.Context, article NewNewsArticle) (string, error) {
	m.record("InsertNews")
	if m.InsertNewsFunc != nil {
		return m.InsertNewsFunc(article)
	}
	return "mock-news", nil
}

func (m *MockStore) GetTeamStats(context.Context) (*TeamStatistics, error) {
	m.record("GetTeamStats")
	if m.GetTeamStatsFunc != nil {
		return m.GetTeamStatsFunc()
	}
	return nil, nil
}

func (m *MockStore) GetTeamBranding(context.Context) (*TeamBranding, error) {
	m.record("GetTeamBranding")
	if m.GetTeamBrandingFunc != nil {
		return m.GetTeamBrandingFunc()
	}
	return nil, nil
}

func (m *MockStore) SetBrandingLogo(_ context.Context, id, logoURL string) error {
	m.record("SetBrandingLogo")
	if m.SetBrandingLogoFunc != nil {
		return m.SetBrandingLogoFunc(id, logoURL)
	}
	return nil
}

func (m *MockStore) Clear() {
	m.record("Clear")
}
