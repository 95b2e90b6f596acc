/* api.go
 * This file contains the public methods for interacting with this package.
 * For consistent results, functions should only be called from this file, not
 * the sub packages for logic and store.
 */

package api

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"bracket-pool/api/external"
	"bracket-pool/api/logic"
	"bracket-pool/api/shared"
	"bracket-pool/api/store"

	"go.mongodb.org/mongo-driver/mongo"
)

// requiredPicks is the number of winners a full bracket names: six wildcard
// games, four divisional, two conference championships and the Super Bowl
const requiredPicks = 13

// API provides methods for interacting with the bracket pool data layer
type API struct {
	Store store.Interface

	// ScoreboardURL is the base url results are synced from. Defaults to the
	// public ESPN host; tests point it at a local server.
	ScoreboardURL string
}

// NewAPI creates a new API instance with the provided configuration
func NewAPI(dbName string, mongoURI string, season string) (*API, error) {
	if dbName == "" || season == "" {
		return nil, fmt.Errorf("dbName and season are required")
	}

	s, err := store.NewStore(dbName, mongoURI, season)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	scoreboardURL := os.Getenv("SCOREBOARD_API_URL")
	if scoreboardURL == "" {
		scoreboardURL = external.DefaultBaseURL
	}

	return &API{
		Store:         s,
		ScoreboardURL: scoreboardURL,
	}, nil
}

// SubmitBracket contains the logic to set a user's bracket in the DB.
// It receives a user struct that contains userID and username, and the 13
// winner names in game order: AFC wildcard (3), NFC wildcard (3), AFC
// divisional (2), NFC divisional (2), AFC championship, NFC championship,
// Super Bowl. Each winner must be a participant of the game its position
// implies, so the list describes one coherent bracket.
// It updates the user's bracket in the database, or returns an error if it
// occurs.
func (a *API) SubmitBracket(user shared.User, teamNames []string) error {
	err := a.Store.EnsureSeason()
	if err != nil {
		return err
	}

	season, err := a.Store.GetSeason()
	if err != nil {
		return err
	}

	if len(teamNames) != requiredPicks {
		return fmt.Errorf("incorrect number of teams arguments, expected %d but got %d", requiredPicks, len(teamNames))
	}

	// Fix formatting on input teams
	for i := range teamNames {
		teamNames[i] = strings.ReplaceAll(teamNames[i], "\"", "")
		teamNames[i] = strings.ReplaceAll(teamNames[i], "“", "")
		teamNames[i] = strings.ReplaceAll(teamNames[i], "”", "")
	}

	// Validate input teams against the season roster
	teams, invalidTeams := logic.ResolveTeams(teamNames, season.Teams)
	if len(invalidTeams) > 0 {
		var str strings.Builder
		str.WriteString("the following team names are invalid:")
		for i := range invalidTeams {
			str.WriteString(fmt.Sprintf(" '%s'", invalidTeams[i]))
		}
		return errors.New(str.String())
	}

	view, err := assembleBracket(season, teams)
	if err != nil {
		return err
	}

	bracket := store.Bracket{
		Season:    season.Name,
		UserID:    user.UserID,
		Username:  user.Username,
		Picks:     logic.ExtractPicks(view),
		UpdatedAt: time.Now(),
	}
	bracket.RefreshDerived()

	// Score against whatever results exist so the stored derived fields are
	// current from the moment of submission
	master := a.masterPicks()
	result, scored := logic.CalculateScores(bracket.Picks, master, season.Points)
	bracket.Picks = scored
	bracket.CurrentScore = result.CurrentScore
	bracket.MaxPossibleScore = result.MaxPossibleScore

	err = a.Store.StoreBracket(bracket)
	if err != nil {
		return err
	}

	return nil
}

// CheckBracket contains the logic required to check a user's bracket against
// the master bracket.
// It receives a user struct and receiver pointer to api.
// It returns a string containing the per-pick status of the user's bracket,
// or an error if it occurs.
func (a *API) CheckBracket(user shared.User) (string, error) {
	err := a.Store.EnsureSeason()
	if err != nil {
		return "", err
	}

	season, err := a.Store.GetSeason()
	if err != nil {
		return "", err
	}

	// Fetch bracket from db
	bracket, err := a.Store.GetBracket(user.UserID)
	if err != nil {
		return "", err
	}

	master := a.masterPicks()
	result, scored := logic.CalculateScores(bracket.Picks, master, season.Points)

	return buildBracketReport(bracket, scored, result), nil
}

// BuildBracket generates the fully annotated bracket view for a user: every
// round their picks reach, each pick's team flagged and, where the master
// bracket has results, correctness marks.
// Postconditions: Returns the BracketView for presentation, or an error if it
// occurs
func (a *API) BuildBracket(user shared.User) (shared.BracketView, error) {
	err := a.Store.EnsureSeason()
	if err != nil {
		return shared.BracketView{}, err
	}

	season, err := a.Store.GetSeason()
	if err != nil {
		return shared.BracketView{}, err
	}

	bracket, err := a.Store.GetBracket(user.UserID)
	if err != nil {
		return shared.BracketView{}, err
	}

	return buildView(season, bracket.Picks, a.masterPicks())
}

// SetMasterResult records an actual game result in the master bracket. Admin
// entry point: the winner is resolved against the two participants of the
// numbered game as the master bracket currently projects it.
// Postconditions: Updates the master bracket in the DB and rescores every
// stored bracket, or returns an error if it occurs
func (a *API) SetMasterResult(gameNumber int, teamName string) error {
	err := a.Store.EnsureSeason()
	if err != nil {
		return err
	}

	season, err := a.Store.GetSeason()
	if err != nil {
		return err
	}

	master := a.masterPicks()
	view, err := buildView(season, master, nil)
	if err != nil {
		return err
	}

	game, round, ok := findGame(view, gameNumber)
	if !ok {
		return fmt.Errorf("game %d has no known matchup yet; results must be entered in round order", gameNumber)
	}

	winner, err := resolveParticipant(game, teamName)
	if err != nil {
		return err
	}

	master = upsertPick(master, shared.Pick{
		Conference: round.Conference,
		Round:      round.Number,
		PointValue: round.PointValue,
		GameNumber: gameNumber,
		WinnerID:   winner.ID,
		WinnerName: winner.Name,
	})

	err = a.Store.StoreMasterBracket(store.MasterBracket{
		Season:    season.Name,
		Picks:     master,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	return a.RescoreBrackets()
}

// SyncMasterResults pulls the live scoreboard and fills in every completed
// game the master bracket is missing. Matchups are matched by the pair of
// participating teams, so reseeding has already been applied by the time a
// result lands.
// Postconditions: Updates the master bracket and rescores stored brackets
// when anything changed, or returns an error if it occurs
func (a *API) SyncMasterResults() error {
	err := a.Store.EnsureSeason()
	if err != nil {
		return err
	}

	season, err := a.Store.GetSeason()
	if err != nil {
		return err
	}

	results, err := external.FetchPlayoffResults(a.ScoreboardURL, season.Year)
	if err != nil {
		return err
	}

	master := a.masterPicks()
	changed := false

	// Filling in one round can make the next round's matchups known, so keep
	// re-deriving the projected bracket until a pass adds nothing
	for range [4]int{} {
		view, err := buildView(season, master, nil)
		if err != nil {
			return err
		}

		added := false
		for _, round := range allRounds(view) {
			for _, game := range round.Games {
				if game.SelectedWinner != "" {
					continue
				}
				winner, ok := matchResult(game, results, season.Teams)
				if !ok {
					continue
				}
				master = upsertPick(master, shared.Pick{
					Conference: round.Conference,
					Round:      round.Number,
					PointValue: round.PointValue,
					GameNumber: game.GameNumber,
					WinnerID:   winner.ID,
					WinnerName: winner.Name,
				})
				added = true
			}
		}
		if !added {
			break
		}
		changed = true
	}

	if !changed {
		return nil
	}

	err = a.Store.StoreMasterBracket(store.MasterBracket{
		Season:    season.Name,
		Picks:     master,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	return a.RescoreBrackets()
}

// RescoreBrackets recomputes the derived fields of every stored bracket from
// its pick list and the current master bracket. Scores are never trusted as
// stored; this is the only way they change.
// Postconditions: Updates every bracket in the DB, or returns an error if it
// occurs
func (a *API) RescoreBrackets() error {
	season, err := a.Store.GetSeason()
	if err != nil {
		return err
	}

	brackets, err := a.Store.GetAllBrackets()
	if err != nil {
		return err
	}

	master := a.masterPicks()

	for _, bracket := range brackets {
		result, scored := logic.CalculateScores(bracket.Picks, master, season.Points)
		bracket.Picks = scored
		bracket.CurrentScore = result.CurrentScore
		bracket.MaxPossibleScore = result.MaxPossibleScore
		bracket.RefreshDerived()
		bracket.UpdatedAt = time.Now()

		err = a.Store.StoreBracket(bracket)
		if err != nil {
			return err
		}
	}
	return nil
}

// Standings returns the ranked leaderboard rows for the season
func (a *API) Standings() ([]logic.Standing, error) {
	err := a.Store.EnsureSeason()
	if err != nil {
		return nil, err
	}

	brackets, err := a.Store.GetAllBrackets()
	if err != nil {
		return nil, err
	}

	return logic.BuildStandings(brackets), nil
}

// GetStandings fetches the standings and generates a response string
// Preconditions: Receives receiver pointer to api
// Postconditions: Returns a string with the summary of the standings for
// this season
func (a *API) GetStandings() (string, error) {
	standings, err := a.Standings()
	if err != nil {
		return "", err
	}

	if len(standings) == 0 {
		return "No submitted brackets yet", nil
	}

	var response strings.Builder
	response.WriteString("Current standings:\n")
	for _, s := range standings {
		response.WriteString(fmt.Sprintf("%s: %s, %d points (max %d), picked %s\n",
			s.PlaceAsString, s.Username, s.CurrentScore, s.MaxPossibleScore, s.PredictedWinner))
	}

	return response.String(), nil
}

// GetTeams gets a list of the playoff teams for the season, grouped by
// conference and ordered by seed.
// It returns a string slice containing one formatted entry per team.
func (a *API) GetTeams() ([]string, error) {
	err := a.Store.EnsureSeason()
	if err != nil {
		return nil, err
	}

	season, err := a.Store.GetSeason()
	if err != nil {
		return nil, err
	}

	teams := make([]shared.Team, len(season.Teams))
	copy(teams, season.Teams)
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].Conference != teams[j].Conference {
			return teams[i].Conference < teams[j].Conference
		}
		return teams[i].Seed < teams[j].Seed
	})

	var names []string
	for _, team := range teams {
		names = append(names, fmt.Sprintf("%s (%s %d)", team.Name, team.Conference, team.Seed))
	}
	return names, nil
}

// GetRemainingGames lists the games the master bracket has no result for
// yet, as far as matchups are known.
// It returns a string slice containing one formatted entry per open game.
func (a *API) GetRemainingGames() ([]string, error) {
	err := a.Store.EnsureSeason()
	if err != nil {
		return nil, err
	}

	season, err := a.Store.GetSeason()
	if err != nil {
		return nil, err
	}

	view, err := buildView(season, a.masterPicks(), nil)
	if err != nil {
		return nil, err
	}

	var games []string
	for _, round := range allRounds(view) {
		for _, game := range round.Games {
			if game.SelectedWinner != "" {
				continue
			}
			games = append(games, fmt.Sprintf("- Game %d (%s): %s vs %s\n",
				game.GameNumber, roundLabel(round), game.Home.Team.Name, game.Away.Team.Name))
		}
	}
	return games, nil
}

// GetSeasonInfo gets the following information about the pool: season name,
// year, point schedule and the maximum achievable score.
// It returns a string slice with the contents attribute : value containing
// the information listed above.
func (a *API) GetSeasonInfo() ([]string, error) {
	err := a.Store.EnsureSeason()
	if err != nil {
		return nil, err
	}

	season, err := a.Store.GetSeason()
	if err != nil {
		return nil, err
	}

	var values []string
	values = append(values, fmt.Sprintf("Season: %s", season.Name))
	values = append(values, fmt.Sprintf("Year: %d", season.Year))
	values = append(values, fmt.Sprintf("Points per game: wildcard %d, divisional %d, conference %d, super bowl %d",
		season.Points.Wildcard, season.Points.Divisional, season.Points.Conference, season.Points.SuperBowl))
	values = append(values, fmt.Sprintf("Maximum possible score: %d", season.Points.Total()))
	values = append(values, fmt.Sprintf("Number of required picks: %d", requiredPicks))
	return values, nil
}

// masterPicks returns the master bracket's pick list, or nil before any
// results have been entered. Absence is normal early in the playoffs and is
// not an error here.
func (a *API) masterPicks() []shared.Pick {
	master, err := a.Store.GetMasterBracket()
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			fmt.Println(err)
		}
		return nil
	}
	return master.Picks
}
