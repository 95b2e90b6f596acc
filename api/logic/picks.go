/* picks.go
 * Contains the logic for converting between the on-screen bracket model and
 * the flat pick lists that get persisted
 */

package logic

import (
	"bracket-pool/api/shared"
)

// ExtractPicks flattens a bracket view into the persisted pick form. It walks
// the AFC rounds, then the NFC rounds, in list order, emitting one pick per
// game whether or not a winner is selected, then the Super Bowl game only if
// its winner is set. Output order is only used for persistence; scoring
// re-filters by conference, round and game.
func ExtractPicks(view shared.BracketView) []shared.Pick {
	var picks []shared.Pick
	for _, round := range view.AFCRounds {
		for _, game := range round.Games {
			picks = append(picks, pickFromGame(round, game))
		}
	}
	for _, round := range view.NFCRounds {
		for _, game := range round.Games {
			picks = append(picks, pickFromGame(round, game))
		}
	}
	if view.SuperBowl != nil {
		for _, game := range view.SuperBowl.Games {
			if game.SelectedWinner == "" {
				continue
			}
			picks = append(picks, pickFromGame(*view.SuperBowl, game))
		}
	}
	return picks
}

// pickFromGame builds one flat pick for a game, resolving the winner's name
// by comparing the selected id against the game's two participants
func pickFromGame(round shared.Round, game shared.Game) shared.Pick {
	pick := shared.Pick{
		Conference: round.Conference,
		Round:      round.Number,
		PointValue: round.PointValue,
		GameNumber: game.GameNumber,
		WinnerID:   game.SelectedWinner,
	}
	switch game.SelectedWinner {
	case "":
	case game.Home.Team.ID:
		pick.WinnerName = game.Home.Team.Name
	case game.Away.Team.ID:
		pick.WinnerName = game.Away.Team.Name
	}
	return pick
}

// ApplyPicks writes a flat pick list back onto a freshly generated round. For
// each game it looks for the pick matching exactly on (conference, round,
// game number); when found it sets the game's selected winner and flags the
// matching participant. If reference is non-empty (a list of winner ids with
// empty entries dropped) and the pick names a winner, the game's IsCorrect is
// set by membership in the reference set; otherwise it stays unknown. Games
// with no matching pick are left untouched.
func ApplyPicks(round *shared.Round, picks []shared.Pick, reference []string) {
	var refIDs []string
	for _, id := range reference {
		if id != "" {
			refIDs = append(refIDs, id)
		}
	}

	for i := range round.Games {
		game := &round.Games[i]
		pick, ok := findPick(picks, round.Conference, round.Number, game.GameNumber)
		if !ok {
			continue
		}

		game.SelectedWinner = pick.WinnerID
		if pick.WinnerID == game.Home.Team.ID {
			game.Home.Selected = true
		} else if pick.WinnerID == game.Away.Team.ID {
			game.Away.Selected = true
		}

		if len(refIDs) > 0 && pick.WinnerID != "" {
			correct := contains(refIDs, pick.WinnerID)
			game.IsCorrect = &correct
		}
	}
}

// findPick returns the first pick matching the exact (conference, round, game
// number) triple. Duplicate picks for one game are an upstream data integrity
// problem; the first match wins.
func findPick(picks []shared.Pick, conf shared.Conference, round int, gameNumber int) (shared.Pick, bool) {
	for _, p := range picks {
		if p.Conference == conf && p.Round == round && p.GameNumber == gameNumber {
			return p, true
		}
	}
	return shared.Pick{}, false
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
