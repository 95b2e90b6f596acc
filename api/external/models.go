/* models.go
 * This file contains the models used by the external package when fetching
 * data from the ESPN scoreboard api
 */

package external

// GameResult is one finished or in-progress playoff game as reported by the
// scoreboard. Winner is the display name of the winning team and is empty
// until Completed is true.
type GameResult struct {
	HomeTeam  string
	AwayTeam  string
	HomeScore int
	AwayScore int
	Winner    string
	Completed bool
}

// The structs below mirror the slice of the ESPN scoreboard response we care
// about. Everything else in the payload is ignored.

type scoreboardResponse struct {
	Events []scoreboardEvent `json:"events"`
}

type scoreboardEvent struct {
	Name         string                  `json:"name"`
	Date         string                  `json:"date"`
	Competitions []scoreboardCompetition `json:"competitions"`
}

type scoreboardCompetition struct {
	Competitors []scoreboardCompetitor `json:"competitors"`
	Status      scoreboardStatus       `json:"status"`
}

type scoreboardCompetitor struct {
	HomeAway string         `json:"homeAway"`
	Winner   bool           `json:"winner"`
	Score    string         `json:"score"`
	Team     scoreboardTeam `json:"team"`
}

type scoreboardTeam struct {
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
}

type scoreboardStatus struct {
	Type scoreboardStatusType `json:"type"`
}

type scoreboardStatusType struct {
	Completed bool   `json:"completed"`
	State     string `json:"state"`
}
