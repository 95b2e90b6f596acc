/* brackets.go
 * Contains the methods for interacting with the brackets collection
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

// StoreBracket stores a user's bracket in the db
// Preconditions: Receives a Bracket with the user's picks and derived fields
// already refreshed
// Postconditions: Stores or updates the user's bracket for this season, or
// returns an error if the operation was unsuccessful
func (s *Store) StoreBracket(bracket Bracket) error {
	if bracket.UserID == "" {
		return fmt.Errorf("bracket has no user id")
	}

	// Attempt to find an existing document
	var result Bracket
	err := s.Collections.Brackets.FindOne(context.TODO(), bson.M{"userid": bracket.UserID, "season": bracket.Season}).Decode(&result)
	notFound := err == mongo.ErrNoDocuments

	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing bracket failed: %w", err)
	}

	// The user currently does not have a bracket stored so we create a new
	// document
	if notFound {
		_, err := s.Collections.Brackets.InsertOne(context.TODO(), bracket)
		if err != nil {
			return fmt.Errorf("failed to insert new bracket: %w", err)
		}
		return nil
	}

	filter := bson.M{
		"userid": bracket.UserID,
		"season": bracket.Season,
	}
	update := bson.M{
		"$set": bracket,
	}

	_, err = s.Collections.Brackets.UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return fmt.Errorf("failed to update existing bracket: %w", err)
	}
	return nil
}

// GetBracket does a DB lookup and gets the bracket for a user
// Preconditions: Receives a string containing userID
// Postconditions: Returns the user's bracket if it exists, or an error if it
// occurs
func (s *Store) GetBracket(userID string) (Bracket, error) {
	opts := options.FindOne()

	var result Bracket
	err := s.Collections.Brackets.FindOne(context.TODO(), bson.M{"userid": userID, "season": s.Season}, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Bracket{}, err
		}
		return Bracket{}, fmt.Errorf("error fetching bracket from db: %w", err)
	}

	return result, nil
}

// GetAllBrackets does a DB lookup and gets every bracket stored for the
// season. Used in standings calculations and rescoring.
// Postconditions: Returns a slice of Brackets or an error if it occurs
func (s *Store) GetAllBrackets() ([]Bracket, error) {
	// Filter query to match documents for the configured season
	filter := bson.D{{Key: "season", Value: s.Season}}

	// Retrieves documents that match the filter
	cursor, err := s.Collections.Brackets.Find(context.TODO(), filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching brackets from db: %w", err)
	}

	// Unpack the cursor into a slice
	var results []Bracket
	if err = cursor.All(context.TODO(), &results); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of brackets: %w", err)
	}

	return results, nil
}
