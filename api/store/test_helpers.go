/* test_helpers.go
 * Contains test helper functions and sample data constructors for store
 * package tests
 */

package store

import (
	"context"
	"fmt"

	"bracket-pool/api/shared"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMockStore creates a Store instance for testing purposes.
// This can be used with a real test database or in-memory MongoDB.
func NewMockStore(dbName string, mongoURI string) (*Store, error) {
	return NewStore(dbName, mongoURI, "test_season")
}

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	store, err := NewMockStore("test_bracket_pool", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if store.Client != nil {
			// Drop test database
			store.Database.Drop(context.TODO())
			// Disconnect client
			store.Client.Disconnect(context.TODO())
		}
	}

	return store, cleanup, nil
}

// CreateTestClient creates a test MongoDB client.
func CreateTestClient(mongoURI string) (*mongo.Client, error) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	return client, nil
}

// CreateSampleSeason creates a full 14-team Season for testing
func CreateSampleSeason(name string) Season {
	afcNames := []string{"Chiefs", "Bills", "Ravens", "Texans", "Chargers", "Steelers", "Broncos"}
	nfcNames := []string{"Lions", "Eagles", "Buccaneers", "Rams", "Vikings", "Commanders", "Packers"}

	season := Season{
		Name:   name,
		Year:   2025,
		Points: shared.DefaultRoundPoints(),
	}
	for i, teamName := range afcNames {
		season.Teams = append(season.Teams, shared.Team{
			ID:         fmt.Sprintf("afc-%d", i+1),
			Name:       teamName,
			Conference: shared.AFC,
			Seed:       i + 1,
		})
	}
	for i, teamName := range nfcNames {
		season.Teams = append(season.Teams, shared.Team{
			ID:         fmt.Sprintf("nfc-%d", i+1),
			Name:       teamName,
			Conference: shared.NFC,
			Seed:       i + 1,
		})
	}
	return season
}

// CreateSampleBracket creates a Bracket with wildcard picks only
func CreateSampleBracket(userID, username, season string) Bracket {
	return Bracket{
		Season:   season,
		UserID:   userID,
		Username: username,
		Picks: []shared.Pick{
			{Conference: shared.AFC, Round: shared.WildcardRound, PointValue: 1, GameNumber: 1, WinnerID: "afc-2", WinnerName: "Bills"},
			{Conference: shared.AFC, Round: shared.WildcardRound, PointValue: 1, GameNumber: 2, WinnerID: "afc-3", WinnerName: "Ravens"},
			{Conference: shared.AFC, Round: shared.WildcardRound, PointValue: 1, GameNumber: 3, WinnerID: "afc-4", WinnerName: "Texans"},
			{Conference: shared.NFC, Round: shared.WildcardRound, PointValue: 1, GameNumber: 4, WinnerID: "nfc-2", WinnerName: "Eagles"},
			{Conference: shared.NFC, Round: shared.WildcardRound, PointValue: 1, GameNumber: 5, WinnerID: "nfc-3", WinnerName: "Buccaneers"},
			{Conference: shared.NFC, Round: shared.WildcardRound, PointValue: 1, GameNumber: 6, WinnerID: "nfc-4", WinnerName: "Rams"},
		},
	}
}
