/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 */

package store

import (
	"context"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	EnsureSeason() error
	GetSeason() (Season, error)
	StoreSeason(season Season) error
	GetBracket(userID string) (Bracket, error)
	GetAllBrackets() ([]Bracket, error)
	StoreBracket(bracket Bracket) error
	GetMasterBracket() (MasterBracket, error)
	StoreMasterBracket(master MasterBracket) error

	// Getter methods for accessing fields
	GetDatabase() interface{ Name() string }
	GetSeasonName() string
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetSeasonName returns the season label brackets are stored under
func (s *Store) GetSeasonName() string {
	return s.Season
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
