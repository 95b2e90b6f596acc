/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package
 */

package api

import (
	"context"

	"bracket-pool/api/store"

	"go.mongodb.org/mongo-driver/mongo"
)

// MockStore implements the Store interface for testing
type MockStore struct {
	// Storage for mock data
	Season   store.Season
	Brackets map[string]store.Bracket
	Master   *store.MasterBracket

	// Error injection for testing error paths
	EnsureSeasonError       error
	GetSeasonError          error
	StoreSeasonError        error
	GetBracketError         error
	GetAllBracketsError     error
	StoreBracketError       error
	GetMasterBracketError   error
	StoreMasterBracketError error

	// Database info
	DatabaseName string
	SeasonName   string
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// NewMockStore creates a new MockStore seeded with the sample 14-team season
func NewMockStore(seasonName string) *MockStore {
	return &MockStore{
		Season:       store.CreateSampleSeason(seasonName),
		Brackets:     make(map[string]store.Bracket),
		DatabaseName: "test_db",
		SeasonName:   seasonName,
	}
}

// EnsureSeason mock implementation
func (m *MockStore) EnsureSeason() error {
	if m.EnsureSeasonError != nil {
		return m.EnsureSeasonError
	}
	return nil
}

// GetSeason mock implementation
func (m *MockStore) GetSeason() (store.Season, error) {
	if m.GetSeasonError != nil {
		return store.Season{}, m.GetSeasonError
	}
	return m.Season, nil
}

// StoreSeason mock implementation
func (m *MockStore) StoreSeason(season store.Season) error {
	if m.StoreSeasonError != nil {
		return m.StoreSeasonError
	}
	m.Season = season
	return nil
}

// GetBracket mock implementation
func (m *MockStore) GetBracket(userID string) (store.Bracket, error) {
	if m.GetBracketError != nil {
		return store.Bracket{}, m.GetBracketError
	}
	bracket, ok := m.Brackets[userID]
	if !ok {
		return store.Bracket{}, mongo.ErrNoDocuments
	}
	return bracket, nil
}

// GetAllBrackets mock implementation
func (m *MockStore) GetAllBrackets() ([]store.Bracket, error) {
	if m.GetAllBracketsError != nil {
		return nil, m.GetAllBracketsError
	}
	var brackets []store.Bracket
	for _, bracket := range m.Brackets {
		brackets = append(brackets, bracket)
	}
	return brackets, nil
}

// StoreBracket mock implementation
func (m *MockStore) StoreBracket(bracket store.Bracket) error {
	if m.StoreBracketError != nil {
		return m.StoreBracketError
	}
	m.Brackets[bracket.UserID] = bracket
	return nil
}

// GetMasterBracket mock implementation
func (m *MockStore) GetMasterBracket() (store.MasterBracket, error) {
	if m.GetMasterBracketError != nil {
		return store.MasterBracket{}, m.GetMasterBracketError
	}
	if m.Master == nil {
		return store.MasterBracket{}, mongo.ErrNoDocuments
	}
	return *m.Master, nil
}

// StoreMasterBracket mock implementation
func (m *MockStore) StoreMasterBracket(master store.MasterBracket) error {
	if m.StoreMasterBracketError != nil {
		return m.StoreMasterBracketError
	}
	m.Master = &master
	return nil
}

// Implement getter methods for store.Interface
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: m.DatabaseName}
}

func (m *MockStore) GetSeasonName() string {
	return m.SeasonName
}

// mockClient implements minimal client interface
type mockClient struct{}

func (mc *mockClient) Disconnect(ctx context.Context) error {
	return nil
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}

// Ensure MockStore implements the store interface
var _ store.Interface = (*MockStore)(nil)
