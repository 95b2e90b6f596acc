/* scoring.go
 * Contains the logic for scoring a user's picks against the master bracket,
 * including retroactive elimination of later-round picks
 */

package logic

import (
	"bracket-pool/api/shared"
)

// ScoreResult holds the two derived score fields of a bracket. Both are
// recomputed from the flat pick lists on every call; stored copies are cache
// only and never fed back in.
type ScoreResult struct {
	CurrentScore     int
	MaxPossibleScore int
}

// CalculateScores scores a user's picks against the master bracket's picks.
// It is a pure fold over the available picks: missing or partial data
// degrades to no adjustment rather than an error, and calling it twice with
// the same inputs yields the same result.
//
// MaxPossibleScore starts at the computed total of the season's point
// schedule. Rounds are walked in play order. When the master bracket has at
// least one pick for a round, every user pick in that round is either correct
// (a master pick shares the same round, conference and winner id, earning the
// round's point value) or wrong (the picked team is recorded as eliminated
// and the round's value comes off the maximum). When the master bracket has
// nothing for a round yet, a user pick only loses its value if its team was
// already eliminated in an earlier round. Picks with no winner contribute
// neither score nor penalty.
//
// The second return value is the user's picks with PointsEarned filled in for
// every pick the master bracket has resolved.
func CalculateScores(userPicks []shared.Pick, masterPicks []shared.Pick, points shared.RoundPoints) (ScoreResult, []shared.Pick) {
	result := ScoreResult{
		CurrentScore:     0,
		MaxPossibleScore: points.Total(),
	}

	scored := make([]shared.Pick, len(userPicks))
	copy(scored, userPicks)

	eliminated := make(map[string]bool)

	for round := shared.WildcardRound; round <= shared.SuperBowlRound; round++ {
		pointValue := points.ForRound(round)
		masterHasRound := anyPickForRound(masterPicks, round)

		for i := range scored {
			pick := &scored[i]
			if pick.Round != round || pick.WinnerID == "" {
				continue
			}

			if masterHasRound {
				if masterAgrees(masterPicks, *pick) {
					result.CurrentScore += pointValue
					earned := pointValue
					pick.PointsEarned = &earned
				} else {
					eliminated[pick.WinnerID] = true
					result.MaxPossibleScore -= pointValue
					earned := 0
					pick.PointsEarned = &earned
				}
				continue
			}

			// No master result for this round yet; the pick is still live
			// unless its team already lost in an earlier round
			if eliminated[pick.WinnerID] {
				result.MaxPossibleScore -= pointValue
			}
		}
	}

	return result, scored
}

// anyPickForRound reports whether any pick is recorded for the round number,
// in either conference
func anyPickForRound(picks []shared.Pick, round int) bool {
	for _, p := range picks {
		if p.Round == round {
			return true
		}
	}
	return false
}

// masterAgrees reports whether a master pick exists with the same round,
// conference and winner id as the user's pick. Game numbers are deliberately
// not compared: reseeding can shuffle which game number a team lands in
// between a user's bracket and the actual one.
func masterAgrees(masterPicks []shared.Pick, pick shared.Pick) bool {
	for _, m := range masterPicks {
		if m.Round == pick.Round && m.Conference == pick.Conference && m.WinnerID != "" && m.WinnerID == pick.WinnerID {
			return true
		}
	}
	return false
}
