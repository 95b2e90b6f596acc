/* test_helpers.go
 * Contains shared fixtures for logic package tests
 */

package logic

import (
	"fmt"

	"bracket-pool/api/shared"
)

// testRoster returns a full 14-team playoff field, seeds 1-7 per conference.
// Team ids are stable strings of the form "afc-3" / "nfc-5".
func testRoster() []shared.Team {
	afcNames := []string{"Chiefs", "Bills", "Ravens", "Texans", "Chargers", "Steelers", "Broncos"}
	nfcNames := []string{"Lions", "Eagles", "Buccaneers", "Rams", "Vikings", "Commanders", "Packers"}

	var teams []shared.Team
	for i, name := range afcNames {
		teams = append(teams, shared.Team{
			ID:         fmt.Sprintf("afc-%d", i+1),
			Name:       name,
			Conference: shared.AFC,
			Seed:       i + 1,
		})
	}
	for i, name := range nfcNames {
		teams = append(teams, shared.Team{
			ID:         fmt.Sprintf("nfc-%d", i+1),
			Name:       name,
			Conference: shared.NFC,
			Seed:       i + 1,
		})
	}
	return teams
}

// selectWinnersBySeed sets each game's winner to whichever participant has
// the given seed, in game order
func selectWinnersBySeed(round *shared.Round, seeds ...int) {
	for i := range round.Games {
		game := &round.Games[i]
		if game.Home.Team.Seed == seeds[i] {
			game.SelectedWinner = game.Home.Team.ID
		} else {
			game.SelectedWinner = game.Away.Team.ID
		}
	}
}
