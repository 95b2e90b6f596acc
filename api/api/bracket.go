/* bracket.go
 * Contains the helper functions the api package uses to project rounds from
 * pick lists, assemble submitted brackets and format bracket reports
 */

package api

import (
	"fmt"
	"strings"

	"bracket-pool/api/external"
	"bracket-pool/api/logic"
	"bracket-pool/api/shared"
	"bracket-pool/api/store"
)

// buildView projects a pick list into the bracket it describes. Wildcard
// rounds always exist; each later round is generated only once every game of
// the round before it has a winner, which is how the caller contract around
// incomplete rounds is enforced. When master is non-nil each applied round is
// annotated for correctness against the master picks of the same round.
func buildView(season store.Season, picks []shared.Pick, master []shared.Pick) (shared.BracketView, error) {
	var view shared.BracketView

	afcRounds, err := conferenceRounds(shared.AFC, season, picks, master)
	if err != nil {
		return shared.BracketView{}, err
	}
	view.AFCRounds = afcRounds

	nfcRounds, err := conferenceRounds(shared.NFC, season, picks, master)
	if err != nil {
		return shared.BracketView{}, err
	}
	view.NFCRounds = nfcRounds

	if len(view.AFCRounds) == 3 && len(view.NFCRounds) == 3 &&
		roundComplete(view.AFCRounds[2]) && roundComplete(view.NFCRounds[2]) {
		sb, err := logic.SuperBowlRound(season.Teams, view.AFCRounds[2], view.NFCRounds[2], season.Points)
		if err != nil {
			return shared.BracketView{}, err
		}
		logic.ApplyPicks(&sb, picks, refForRound(master, shared.SuperBowlRound))
		view.SuperBowl = &sb
	}

	return view, nil
}

// conferenceRounds generates and applies one conference's rounds as far as
// the picks reach
func conferenceRounds(conf shared.Conference, season store.Season, picks []shared.Pick, master []shared.Pick) ([]shared.Round, error) {
	wildcard, err := logic.WildcardRound(conf, season.Teams, season.Points)
	if err != nil {
		return nil, err
	}
	logic.ApplyPicks(&wildcard, picks, refForRound(master, shared.WildcardRound))
	rounds := []shared.Round{wildcard}

	if !roundComplete(wildcard) {
		return rounds, nil
	}

	divisional, err := logic.DivisionalRound(conf, season.Teams, wildcard, season.Points)
	if err != nil {
		return nil, err
	}
	logic.ApplyPicks(&divisional, picks, refForRound(master, shared.DivisionalRound))
	rounds = append(rounds, divisional)

	if !roundComplete(divisional) {
		return rounds, nil
	}

	championship, err := logic.ConferenceRound(conf, season.Teams, divisional, season.Points)
	if err != nil {
		return nil, err
	}
	logic.ApplyPicks(&championship, picks, refForRound(master, shared.ConferenceRound))
	rounds = append(rounds, championship)

	return rounds, nil
}

// assembleBracket builds a full bracket view out of 13 resolved winners in
// game order, validating that each winner actually plays in the game its
// position names
func assembleBracket(season store.Season, teams []shared.Team) (shared.BracketView, error) {
	afcWildcard, err := logic.WildcardRound(shared.AFC, season.Teams, season.Points)
	if err != nil {
		return shared.BracketView{}, err
	}
	nfcWildcard, err := logic.WildcardRound(shared.NFC, season.Teams, season.Points)
	if err != nil {
		return shared.BracketView{}, err
	}
	if err := selectWinners(&afcWildcard, teams[0:3]); err != nil {
		return shared.BracketView{}, err
	}
	if err := selectWinners(&nfcWildcard, teams[3:6]); err != nil {
		return shared.BracketView{}, err
	}

	afcDivisional, err := logic.DivisionalRound(shared.AFC, season.Teams, afcWildcard, season.Points)
	if err != nil {
		return shared.BracketView{}, err
	}
	nfcDivisional, err := logic.DivisionalRound(shared.NFC, season.Teams, nfcWildcard, season.Points)
	if err != nil {
		return shared.BracketView{}, err
	}
	if err := selectWinners(&afcDivisional, teams[6:8]); err != nil {
		return shared.BracketView{}, err
	}
	if err := selectWinners(&nfcDivisional, teams[8:10]); err != nil {
		return shared.BracketView{}, err
	}

	afcChampionship, err := logic.ConferenceRound(shared.AFC, season.Teams, afcDivisional, season.Points)
	if err != nil {
		return shared.BracketView{}, err
	}
	nfcChampionship, err := logic.ConferenceRound(shared.NFC, season.Teams, nfcDivisional, season.Points)
	if err != nil {
		return shared.BracketView{}, err
	}
	if err := selectWinners(&afcChampionship, teams[10:11]); err != nil {
		return shared.BracketView{}, err
	}
	if err := selectWinners(&nfcChampionship, teams[11:12]); err != nil {
		return shared.BracketView{}, err
	}

	superBowl, err := logic.SuperBowlRound(season.Teams, afcChampionship, nfcChampionship, season.Points)
	if err != nil {
		return shared.BracketView{}, err
	}
	if err := selectWinners(&superBowl, teams[12:13]); err != nil {
		return shared.BracketView{}, err
	}

	return shared.BracketView{
		AFCRounds: []shared.Round{afcWildcard, afcDivisional, afcChampionship},
		NFCRounds: []shared.Round{nfcWildcard, nfcDivisional, nfcChampionship},
		SuperBowl: &superBowl,
	}, nil
}

// selectWinners sets each game's winner to the corresponding team, in game
// order, rejecting a team that is not one of the game's two participants
func selectWinners(round *shared.Round, winners []shared.Team) error {
	if len(winners) != len(round.Games) {
		return fmt.Errorf("%s round %d needs %d winners but got %d", round.Conference, round.Number, len(round.Games), len(winners))
	}
	for i := range round.Games {
		game := &round.Games[i]
		winner := winners[i]
		if winner.ID != game.Home.Team.ID && winner.ID != game.Away.Team.ID {
			return fmt.Errorf("'%s' does not play in game %d (%s vs %s); check the order of your picks",
				winner.Name, game.GameNumber, game.Home.Team.Name, game.Away.Team.Name)
		}
		game.SelectedWinner = winner.ID
	}
	return nil
}

// roundComplete reports whether every game of a round has a selected winner
func roundComplete(round shared.Round) bool {
	for _, game := range round.Games {
		if game.SelectedWinner == "" {
			return false
		}
	}
	return len(round.Games) > 0
}

// refForRound collects the master bracket's winner ids for one round number.
// Returns nil when the master has nothing for the round so correctness stays
// unknown.
func refForRound(master []shared.Pick, round int) []string {
	var ids []string
	for _, p := range master {
		if p.Round == round && p.WinnerID != "" {
			ids = append(ids, p.WinnerID)
		}
	}
	return ids
}

// allRounds flattens a view into round order: AFC, NFC, then the Super Bowl
func allRounds(view shared.BracketView) []shared.Round {
	var rounds []shared.Round
	rounds = append(rounds, view.AFCRounds...)
	rounds = append(rounds, view.NFCRounds...)
	if view.SuperBowl != nil {
		rounds = append(rounds, *view.SuperBowl)
	}
	return rounds
}

// findGame locates a game by number in a view
func findGame(view shared.BracketView, gameNumber int) (shared.Game, shared.Round, bool) {
	for _, round := range allRounds(view) {
		for _, game := range round.Games {
			if game.GameNumber == gameNumber {
				return game, round, true
			}
		}
	}
	return shared.Game{}, shared.Round{}, false
}

// resolveParticipant matches a user-entered team name to one of a game's two
// participants
func resolveParticipant(game shared.Game, teamName string) (shared.Team, error) {
	participants := []shared.Team{game.Home.Team, game.Away.Team}
	resolved, invalid := logic.ResolveTeams([]string{teamName}, participants)
	if len(invalid) > 0 || len(resolved) == 0 {
		return shared.Team{}, fmt.Errorf("'%s' does not play in game %d (%s vs %s)",
			teamName, game.GameNumber, game.Home.Team.Name, game.Away.Team.Name)
	}
	return resolved[0], nil
}

// upsertPick replaces the pick for the same (conference, round, game) triple
// or appends a new one, preserving the at-most-one-pick-per-game invariant
func upsertPick(picks []shared.Pick, pick shared.Pick) []shared.Pick {
	for i := range picks {
		if picks[i].Conference == pick.Conference && picks[i].Round == pick.Round && picks[i].GameNumber == pick.GameNumber {
			picks[i] = pick
			return picks
		}
	}
	return append(picks, pick)
}

// matchResult finds the scoreboard result for a game by its pair of
// participants and resolves the winner back to a roster team. Results whose
// teams cannot be resolved, or that are not finished, are skipped.
func matchResult(game shared.Game, results []external.GameResult, roster []shared.Team) (shared.Team, bool) {
	for _, result := range results {
		if !result.Completed || result.Winner == "" {
			continue
		}

		home, okHome := resolveScoreboardName(result.HomeTeam, roster)
		away, okAway := resolveScoreboardName(result.AwayTeam, roster)
		if !okHome || !okAway {
			continue
		}

		pair := map[string]bool{home.ID: true, away.ID: true}
		if !pair[game.Home.Team.ID] || !pair[game.Away.Team.ID] {
			continue
		}

		winner, ok := resolveScoreboardName(result.Winner, roster)
		if !ok {
			continue
		}
		return winner, true
	}
	return shared.Team{}, false
}

// resolveScoreboardName matches a scoreboard team name to a roster team. The
// scoreboard uses full display names ("Buffalo Bills") while a season roster
// may be seeded with nicknames ("Bills"), so after an exact match every
// roster name is tried as a substring of the scoreboard name. Ambiguous
// matches resolve to nothing.
func resolveScoreboardName(name string, roster []shared.Team) (shared.Team, bool) {
	lowerName := strings.ToLower(name)

	var matched []shared.Team
	for _, team := range roster {
		lowerTeam := strings.ToLower(team.Name)
		if lowerTeam == lowerName {
			return team, true
		}
		if strings.Contains(lowerName, lowerTeam) {
			matched = append(matched, team)
		}
	}
	if len(matched) == 1 {
		return matched[0], true
	}
	return shared.Team{}, false
}

// roundLabel renders a round for user-facing lists
func roundLabel(round shared.Round) string {
	switch round.Number {
	case shared.WildcardRound:
		return fmt.Sprintf("%s Wildcard", round.Conference)
	case shared.DivisionalRound:
		return fmt.Sprintf("%s Divisional", round.Conference)
	case shared.ConferenceRound:
		return fmt.Sprintf("%s Championship", round.Conference)
	case shared.SuperBowlRound:
		return "Super Bowl"
	}
	return fmt.Sprintf("Round %d", round.Number)
}

// buildBracketReport renders the per-pick status of a scored bracket
func buildBracketReport(bracket store.Bracket, scored []shared.Pick, result logic.ScoreResult) string {
	var response strings.Builder

	eliminated := eliminatedTeams(scored)

	currentRound := 0
	for round := shared.WildcardRound; round <= shared.SuperBowlRound; round++ {
		for _, pick := range scored {
			if pick.Round != round || pick.WinnerID == "" {
				continue
			}
			if round != currentRound {
				response.WriteString(fmt.Sprintf("[%s]\n", roundName(round)))
				currentRound = round
			}

			status := "[Pending]"
			if pick.PointsEarned != nil {
				if *pick.PointsEarned > 0 {
					status = "[Succeeded]"
				} else {
					status = "[Failed]"
				}
			} else if eliminated[pick.WinnerID] {
				// The team already lost an earlier round, so this pick can
				// no longer come in
				status = "[Failed]"
			}
			response.WriteString(fmt.Sprintf("- %s: %s\n", pick.WinnerName, status))
		}
	}

	response.WriteString(fmt.Sprintf("Score: %d, max possible: %d\n", result.CurrentScore, result.MaxPossibleScore))
	if !bracket.Submitted {
		response.WriteString("Your bracket is incomplete and will not appear on the standings until all 13 picks are in\n")
	}
	return response.String()
}

// eliminatedTeams collects the teams the scoring pass marked as wrong. A
// zero-point pick means the master bracket resolved that round without the
// team, so any later pick on it is a dead pick even when its own round has no
// results yet.
func eliminatedTeams(scored []shared.Pick) map[string]bool {
	eliminated := make(map[string]bool)
	for _, p := range scored {
		if p.WinnerID != "" && p.PointsEarned != nil && *p.PointsEarned == 0 {
			eliminated[p.WinnerID] = true
		}
	}
	return eliminated
}

// roundName renders a round number for report headings
func roundName(round int) string {
	switch round {
	case shared.WildcardRound:
		return "Wildcard"
	case shared.DivisionalRound:
		return "Divisional"
	case shared.ConferenceRound:
		return "Conference Championships"
	case shared.SuperBowlRound:
		return "Super Bowl"
	}
	return fmt.Sprintf("Round %d", round)
}
