/* rounds.go
 * Contains the logic for generating each round's matchups from the season
 * roster and the previous round's winners, following the NFL reseeding rule
 */

package logic

import (
	"fmt"

	"bracket-pool/api/shared"
)

// wildcardGameBase maps a conference to the game number of its first wildcard
// game. AFC owns games 1-3, NFC games 4-6.
var wildcardGameBase = map[shared.Conference]int{
	shared.AFC: 1,
	shared.NFC: 4,
}

// divisionalGameBase maps a conference to the game number of its first
// divisional game. AFC owns games 7-8, NFC games 9-10.
var divisionalGameBase = map[shared.Conference]int{
	shared.AFC: 7,
	shared.NFC: 9,
}

// conferenceGameNumber maps a conference to its championship game number
var conferenceGameNumber = map[shared.Conference]int{
	shared.AFC: 11,
	shared.NFC: 12,
}

const superBowlGameNumber = 13

// WildcardRound generates the three wildcard games for a conference.
// Preconditions: teams contains the conference's seeds 2 through 7; seed 1
// has a bye and does not appear in this round
// Postconditions: Returns the round with games seeded 2v7, 3v6, 4v5 in that
// order, the higher seed at home, or an error if a seed is missing
func WildcardRound(conf shared.Conference, teams []shared.Team, points shared.RoundPoints) (shared.Round, error) {
	round := shared.Round{
		Conference: conf,
		Number:     shared.WildcardRound,
		PointValue: points.Wildcard,
	}

	pairings := [][2]int{{2, 7}, {3, 6}, {4, 5}}
	for i, pair := range pairings {
		home, err := teamBySeed(teams, conf, pair[0])
		if err != nil {
			return shared.Round{}, err
		}
		away, err := teamBySeed(teams, conf, pair[1])
		if err != nil {
			return shared.Round{}, err
		}
		round.Games = append(round.Games, shared.Game{
			GameNumber: wildcardGameBase[conf] + i,
			Home:       shared.Participant{Team: home},
			Away:       shared.Participant{Team: away},
		})
	}
	return round, nil
}

// DivisionalRound generates the two divisional games for a conference from
// the wildcard round's selected winners. The weakest surviving team
// (numerically largest seed) visits the rested 1 seed and the other two
// survivors play each other.
// Preconditions: all three wildcard games have a selected winner; the caller
// must not invoke this before wildcard winners are recorded
// Postconditions: Returns the round with game 1 = seed 1 (home) vs the lowest
// surviving seed and game 2 = third lowest (home) vs next lowest, or an error
// if winners are missing or unknown
func DivisionalRound(conf shared.Conference, teams []shared.Team, wildcard shared.Round, points shared.RoundPoints) (shared.Round, error) {
	seeds, err := winningSeeds(wildcard)
	if err != nil {
		return shared.Round{}, err
	}
	if len(seeds) != 3 {
		return shared.Round{}, fmt.Errorf("divisional round requires 3 wildcard winners but got %d", len(seeds))
	}

	lowest := removeMax(&seeds)
	nextLowest := removeMax(&seeds)
	thirdLowest := seeds[0]

	round := shared.Round{
		Conference: conf,
		Number:     shared.DivisionalRound,
		PointValue: points.Divisional,
	}

	pairings := [][2]int{{1, lowest}, {thirdLowest, nextLowest}}
	for i, pair := range pairings {
		home, err := teamBySeed(teams, conf, pair[0])
		if err != nil {
			return shared.Round{}, err
		}
		away, err := teamBySeed(teams, conf, pair[1])
		if err != nil {
			return shared.Round{}, err
		}
		round.Games = append(round.Games, shared.Game{
			GameNumber: divisionalGameBase[conf] + i,
			Home:       shared.Participant{Team: home},
			Away:       shared.Participant{Team: away},
		})
	}
	return round, nil
}

// ConferenceRound generates the championship game for a conference from the
// divisional round's selected winners. Home goes to the numerically smaller
// remaining seed. Note this differs from the divisional round, which always
// gives seed 1 the home game; the asymmetry is longstanding pool behaviour
// and is preserved as is.
// Preconditions: both divisional games have a selected winner
// Postconditions: Returns the one-game round or an error if winners are
// missing or unknown
func ConferenceRound(conf shared.Conference, teams []shared.Team, divisional shared.Round, points shared.RoundPoints) (shared.Round, error) {
	seeds, err := winningSeeds(divisional)
	if err != nil {
		return shared.Round{}, err
	}
	if len(seeds) != 2 {
		return shared.Round{}, fmt.Errorf("conference round requires 2 divisional winners but got %d", len(seeds))
	}

	lowest := removeMax(&seeds)
	nextLowest := seeds[0]

	home, err := teamBySeed(teams, conf, nextLowest)
	if err != nil {
		return shared.Round{}, err
	}
	away, err := teamBySeed(teams, conf, lowest)
	if err != nil {
		return shared.Round{}, err
	}

	return shared.Round{
		Conference: conf,
		Number:     shared.ConferenceRound,
		PointValue: points.Conference,
		Games: []shared.Game{{
			GameNumber: conferenceGameNumber[conf],
			Home:       shared.Participant{Team: home},
			Away:       shared.Participant{Team: away},
		}},
	}, nil
}

// SuperBowlRound generates game 13 from the two conference championship
// rounds. The AFC champion is listed as home, the NFC champion as away, each
// looked up by seed and conference against the season roster.
// Preconditions: both conference games have a selected winner
// Postconditions: Returns the one-game Super Bowl round or an error if either
// winner is missing or unknown
func SuperBowlRound(teams []shared.Team, afc shared.Round, nfc shared.Round, points shared.RoundPoints) (shared.Round, error) {
	afcSeeds, err := winningSeeds(afc)
	if err != nil {
		return shared.Round{}, err
	}
	nfcSeeds, err := winningSeeds(nfc)
	if err != nil {
		return shared.Round{}, err
	}
	if len(afcSeeds) != 1 || len(nfcSeeds) != 1 {
		return shared.Round{}, fmt.Errorf("super bowl requires one winner per conference")
	}

	home, err := teamBySeed(teams, shared.AFC, afcSeeds[0])
	if err != nil {
		return shared.Round{}, err
	}
	away, err := teamBySeed(teams, shared.NFC, nfcSeeds[0])
	if err != nil {
		return shared.Round{}, err
	}

	return shared.Round{
		Conference: shared.RoundSuperBowl,
		Number:     shared.SuperBowlRound,
		PointValue: points.SuperBowl,
		Games: []shared.Game{{
			GameNumber: superBowlGameNumber,
			Home:       shared.Participant{Team: home},
			Away:       shared.Participant{Team: away},
		}},
	}, nil
}

// Winner returns the team a game's SelectedWinner refers to
// Preconditions: Receives a game with a non-empty SelectedWinner
// Postconditions: Returns the home or away team whose id matches, or an error
// if no winner is selected or the id matches neither participant
func Winner(game shared.Game) (shared.Team, error) {
	if game.SelectedWinner == "" {
		return shared.Team{}, fmt.Errorf("game %d has no selected winner", game.GameNumber)
	}
	if game.SelectedWinner == game.Home.Team.ID {
		return game.Home.Team, nil
	}
	if game.SelectedWinner == game.Away.Team.ID {
		return game.Away.Team, nil
	}
	return shared.Team{}, fmt.Errorf("selected winner %q is not a participant of game %d", game.SelectedWinner, game.GameNumber)
}

// winningSeeds collects the seed number of each game's selected winner
func winningSeeds(round shared.Round) ([]int, error) {
	var seeds []int
	for _, game := range round.Games {
		team, err := Winner(game)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, team.Seed)
	}
	return seeds, nil
}

// removeMax removes and returns the numerically largest seed from the slice
func removeMax(seeds *[]int) int {
	maxIdx := 0
	for i, s := range *seeds {
		if s > (*seeds)[maxIdx] {
			maxIdx = i
		}
	}
	max := (*seeds)[maxIdx]
	*seeds = append((*seeds)[:maxIdx], (*seeds)[maxIdx+1:]...)
	return max
}

// teamBySeed finds the team with the given seed in a conference
func teamBySeed(teams []shared.Team, conf shared.Conference, seed int) (shared.Team, error) {
	for _, t := range teams {
		if t.Conference == conf && t.Seed == seed {
			return t, nil
		}
	}
	return shared.Team{}, fmt.Errorf("no %s team with seed %d", conf, seed)
}
