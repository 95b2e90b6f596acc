/* seasons.go
 * Contains the methods for interacting with the seasons collection
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureSeason checks that a season document with a full playoff field exists
// before any operation that depends on the roster runs.
// Preconditions: Receives receiver pointer for Store
// Postconditions: Returns nil when the season is usable, or an error if the
// season is missing or its roster is incomplete
func (s *Store) EnsureSeason() error {
	season, err := s.GetSeason()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("season %s has not been set up", s.Season)
		}
		return err
	}
	if len(season.Teams) != 14 {
		return fmt.Errorf("season %s has %d teams but a playoff field needs 14", s.Season, len(season.Teams))
	}
	return nil
}

// GetSeason does a DB lookup for the current season's configuration
// Preconditions: Receives receiver pointer for Store
// Postconditions: Returns the Season document, or an error if it occurs
func (s *Store) GetSeason() (Season, error) {
	opts := options.FindOne()

	var result Season
	err := s.Collections.Seasons.FindOne(context.TODO(), bson.M{"name": s.Season}, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Season{}, err
		}
		return Season{}, fmt.Errorf("error fetching season from db: %w", err)
	}

	return result, nil
}

// StoreSeason inserts or updates the season configuration document
// Preconditions: Receives receiver pointer for Store and the Season value
// Postconditions: Updates the seasons collection and returns nil, or an
// error if it occurs
func (s *Store) StoreSeason(season Season) error {
	if season.Name == "" {
		return fmt.Errorf("season name cannot be empty")
	}

	// Attempt to find an existing document
	var result Season
	err := s.Collections.Seasons.FindOne(context.TODO(), bson.M{"name": season.Name}).Decode(&result)
	notFound := err == mongo.ErrNoDocuments

	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing season failed: %w", err)
	}

	if notFound {
		_, err := s.Collections.Seasons.InsertOne(context.TODO(), season)
		if err != nil {
			return fmt.Errorf("failed to insert new season: %w", err)
		}
		return nil
	}

	filter := bson.M{"name": season.Name}
	update := bson.M{"$set": season}

	_, err = s.Collections.Seasons.UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return fmt.Errorf("failed to update existing season: %w", err)
	}
	return nil
}
