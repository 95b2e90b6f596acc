/* models.go
 * This file contains the structs that map to DB documents
 */

package store

import (
	"time"

	"bracket-pool/api/shared"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Season is the per-season configuration document: the 14-team playoff
// roster and the point schedule. Immutable once playoffs begin.
type Season struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Name   string             `bson:"name,omitempty"`
	Year   int                `bson:"year,omitempty"`
	Teams  []shared.Team      `bson:"teams,omitempty"`
	Points shared.RoundPoints `bson:"points,omitempty"`
}

// Bracket is a user's persisted bracket: the flat pick list plus derived
// fields. CurrentScore and MaxPossibleScore are recomputed from Picks on
// every rescore and are never authoritative inputs; Submitted is true once
// all 13 picks name a winner; PredictedWinner denormalises the Super Bowl
// pick's team name for the leaderboard.
type Bracket struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Season           string             `bson:"season,omitempty"`
	UserID           string             `bson:"userid,omitempty"`
	Username         string             `bson:"username,omitempty"`
	Picks            []shared.Pick      `bson:"picks,omitempty"`
	CurrentScore     int                `bson:"current_score"`
	MaxPossibleScore int                `bson:"max_possible_score"`
	Submitted        bool               `bson:"submitted"`
	PredictedWinner  string             `bson:"predicted_winner,omitempty"`
	UpdatedAt        time.Time          `bson:"updated_at,omitempty"`
}

// MasterBracket is the admin-entered record of actual results, the reference
// every user bracket is scored against. A season has at most one.
type MasterBracket struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Season    string             `bson:"season,omitempty"`
	Picks     []shared.Pick      `bson:"picks,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty"`
}

// RefreshDerived recomputes the bracket fields that hang off the pick list.
// A bracket counts as submitted once all 13 games have a named winner; the
// predicted winner is the name on the round 4 pick.
func (b *Bracket) RefreshDerived() {
	decided := 0
	b.PredictedWinner = ""
	for _, p := range b.Picks {
		if p.WinnerID == "" {
			continue
		}
		decided++
		if p.Round == shared.SuperBowlRound {
			b.PredictedWinner = p.WinnerName
		}
	}
	b.Submitted = decided == 13
}
