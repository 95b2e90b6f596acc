/* store.go
 * Contains the Store struct and NewStore function. The methods for this
 * package are split across three files: seasons.go, brackets.go and
 * master_brackets.go, each covering one collection.
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Season      string
	Collections struct {
		Seasons        *mongo.Collection
		Brackets       *mongo.Collection
		MasterBrackets *mongo.Collection
	}
}

// NewStore initialises the db connection and binds the collections.
// Preconditions: Receives strings containing dbName, mongoURI and the season
// label (e.g. "2025")
// Postconditions: Returns a pointer to the Store object, or an error if it
// occurs
func NewStore(dbName string, mongoURI string, season string) (*Store, error) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	if season == "" {
		return nil, fmt.Errorf("season cannot be empty")
	}

	s := &Store{
		Client:   client,
		Database: db,
		Season:   season,
	}
	s.Collections.Seasons = db.Collection("seasons")
	s.Collections.Brackets = db.Collection("brackets")
	s.Collections.MasterBrackets = db.Collection("master_brackets")
	return s, nil
}
