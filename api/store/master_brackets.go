/* master_brackets.go
 * Contains the methods for interacting with the master_brackets collection.
 * The master bracket is the admin-entered ground truth; a season has at most
 * one document here.
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetMasterBracket returns the season's master bracket from the db
// Preconditions: Receives receiver pointer for Store
// Postconditions: Returns the MasterBracket document, or mongo.ErrNoDocuments
// when no results have been entered yet, or another error if it occurs
func (s *Store) GetMasterBracket() (MasterBracket, error) {
	opts := options.FindOne()

	var result MasterBracket
	err := s.Collections.MasterBrackets.FindOne(context.TODO(), bson.D{{Key: "season", Value: s.Season}}, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return MasterBracket{}, err
		}
		return MasterBracket{}, fmt.Errorf("error fetching master bracket from db: %w", err)
	}

	return result, nil
}

// StoreMasterBracket updates the master bracket stored in the DB
// Preconditions: Receives receiver pointer for Store and the MasterBracket
// value to be stored
// Postconditions: Updates the master_brackets collection and returns nil, or
// an error if it occurs
func (s *Store) StoreMasterBracket(master MasterBracket) error {
	if master.Season == "" {
		return fmt.Errorf("master bracket has no season")
	}

	// Attempt to find an existing document
	var result MasterBracket
	err := s.Collections.MasterBrackets.FindOne(context.TODO(), bson.D{{Key: "season", Value: master.Season}}).Decode(&result)
	notFound := err == mongo.ErrNoDocuments

	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing master bracket failed: %w", err)
	}

	// Perform insert or update
	log.Println("updating master bracket in db")
	if notFound {
		_, err := s.Collections.MasterBrackets.InsertOne(context.TODO(), master)
		if err != nil {
			return fmt.Errorf("master bracket insert failed: %w", err)
		}
		return nil
	}

	filter := bson.M{"season": master.Season}
	update := bson.D{{Key: "$set", Value: master}}

	_, err = s.Collections.MasterBrackets.UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return fmt.Errorf("master bracket update failed: %w", err)
	}
	return nil
}
