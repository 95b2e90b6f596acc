/* models.go
 * This file contains the structs and constants that are shared between sub packages
 */

package shared

// Conference identifies which side of the playoff bracket a team or round
// belongs to. RoundSuperBowl is only ever used as a round label.
type Conference string

const (
	AFC            Conference = "AFC"
	NFC            Conference = "NFC"
	RoundSuperBowl Conference = "Super Bowl"
)

// Round numbers for the four sequential playoff rounds
const (
	WildcardRound   = 1
	DivisionalRound = 2
	ConferenceRound = 3
	SuperBowlRound  = 4
)

type User struct {
	UserID   string
	Username string
}

// Team is a season-scoped playoff team. Seed runs 1-7 and is unique within a
// season+conference; seed 1 has a wildcard bye. Immutable once playoffs begin.
type Team struct {
	ID         string     `bson:"id,omitempty"`
	Name       string     `bson:"name,omitempty"`
	Conference Conference `bson:"conference,omitempty"`
	Seed       int        `bson:"seed,omitempty"`
}

// Participant is a team slot in a game. Selected is set when a pick names
// this side as the winner, used by presentation.
type Participant struct {
	Team     Team
	Selected bool
}

// Game is a single matchup. GameNumber is globally unique within a season
// bracket: 1-3 AFC wildcard, 4-6 NFC wildcard, 7-8 AFC divisional, 9-10 NFC
// divisional, 11 AFC conference, 12 NFC conference, 13 Super Bowl.
// SelectedWinner holds a team id or is empty. IsCorrect is tri-state: nil
// until the game has been compared against a reference pick set.
type Game struct {
	GameNumber     int
	Home           Participant
	Away           Participant
	SelectedWinner string
	IsCorrect      *bool
}

// Round is generated fresh on every read and never persisted; only the flat
// Pick lists are stored.
type Round struct {
	Conference Conference
	Number     int
	PointValue int
	Games      []Game
}

// Pick is the flat, persisted form of a game's decision. WinnerID and
// WinnerName are empty when the user has not decided the game yet.
// PointsEarned is a scoring output and nil until scored.
type Pick struct {
	Conference   Conference `bson:"conference,omitempty"`
	Round        int        `bson:"round,omitempty"`
	PointValue   int        `bson:"point_value,omitempty"`
	GameNumber   int        `bson:"game_number,omitempty"`
	WinnerID     string     `bson:"winner_id,omitempty"`
	WinnerName   string     `bson:"winner_name,omitempty"`
	PointsEarned *int       `bson:"points_earned,omitempty"`
}

// RoundPoints holds the season-configurable per-game point value of each
// round.
type RoundPoints struct {
	Wildcard   int `bson:"wildcard,omitempty"`
	Divisional int `bson:"divisional,omitempty"`
	Conference int `bson:"conference,omitempty"`
	SuperBowl  int `bson:"super_bowl,omitempty"`
}

// DefaultRoundPoints returns the standard pool point schedule
func DefaultRoundPoints() RoundPoints {
	return RoundPoints{Wildcard: 1, Divisional: 2, Conference: 3, SuperBowl: 5}
}

// ForRound returns the per-game point value of the given round number, or 0
// for an unknown round
func (p RoundPoints) ForRound(round int) int {
	switch round {
	case WildcardRound:
		return p.Wildcard
	case DivisionalRound:
		return p.Divisional
	case ConferenceRound:
		return p.Conference
	case SuperBowlRound:
		return p.SuperBowl
	}
	return 0
}

// Total returns the maximum score a bracket can earn under this schedule:
// 6 wildcard games, 4 divisional, 2 conference and the Super Bowl
func (p RoundPoints) Total() int {
	return 6*p.Wildcard + 4*p.Divisional + 2*p.Conference + p.SuperBowl
}

// BracketView is the on-screen bracket model: each conference's rounds in
// play order plus the Super Bowl. Rounds beyond the last one with recorded
// winners are absent.
type BracketView struct {
	AFCRounds []Round
	NFCRounds []Round
	SuperBowl *Round
}
