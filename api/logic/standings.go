/* standings.go
 * Contains the logic for ranking scored brackets: sorting, tie handling,
 * mathematical elimination and the printable place string
 */

package logic

import (
	"fmt"
	"sort"

	"bracket-pool/api/store"
)

// Standing is one leaderboard row for a submitted bracket
type Standing struct {
	UserID           string
	Username         string
	Place            int
	PlaceAsString    string
	CurrentScore     int
	MaxPossibleScore int
	PredictedWinner  string
	Tied             bool
	Eliminated       bool
}

// BuildStandings ranks all submitted brackets for a season. Brackets sort by
// current score then max possible score, both descending. Brackets equal on
// both share a place and both sides of the tie are marked tied. The
// elimination threshold is the current score of the bracket in third position
// (0 when fewer than three brackets are in); a bracket whose max possible
// score is below the threshold can no longer catch third place and is marked
// eliminated.
//
// One more rule runs across brackets: among the brackets placed third or
// better, take the best place present and collect the Super Bowl picks of the
// brackets holding it. Any bracket placed below third that rides the same
// Super Bowl pick gets the eliminated display string, whatever its own state,
// because it cannot outscore that group on the remaining games. Only the
// display string changes, never the place itself.
func BuildStandings(brackets []store.Bracket) []Standing {
	var standings []Standing
	for _, b := range brackets {
		if !b.Submitted {
			continue
		}
		standings = append(standings, Standing{
			UserID:           b.UserID,
			Username:         b.Username,
			CurrentScore:     b.CurrentScore,
			MaxPossibleScore: b.MaxPossibleScore,
			PredictedWinner:  b.PredictedWinner,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].CurrentScore != standings[j].CurrentScore {
			return standings[i].CurrentScore > standings[j].CurrentScore
		}
		return standings[i].MaxPossibleScore > standings[j].MaxPossibleScore
	})

	// Assign places, sharing the place number across exact score ties
	for i := range standings {
		count := i + 1
		if i == 0 {
			standings[i].Place = count
			continue
		}
		prev := &standings[i-1]
		if standings[i].CurrentScore == prev.CurrentScore && standings[i].MaxPossibleScore == prev.MaxPossibleScore {
			standings[i].Place = prev.Place
			standings[i].Tied = true
			prev.Tied = true
		} else {
			standings[i].Place = count
		}
	}

	// Third place's current score is the bar everyone still has to be able
	// to reach
	threshold := 0
	if len(standings) >= 3 {
		threshold = standings[2].CurrentScore
	}
	for i := range standings {
		standings[i].Eliminated = standings[i].MaxPossibleScore < threshold
		standings[i].PlaceAsString = PlaceAsString(standings[i].Place, standings[i].Tied, standings[i].Eliminated)
	}

	applyLeaderPickRule(standings)

	return standings
}

// applyLeaderPickRule forces the eliminated display string on lower brackets
// that share the leading group's Super Bowl pick
func applyLeaderPickRule(standings []Standing) {
	lowestPlace := 0
	for _, s := range standings {
		if s.Place > 3 {
			continue
		}
		if lowestPlace == 0 || s.Place < lowestPlace {
			lowestPlace = s.Place
		}
	}
	if lowestPlace == 0 {
		return
	}

	leaderPicks := make(map[string]bool)
	for _, s := range standings {
		if s.Place == lowestPlace {
			leaderPicks[s.PredictedWinner] = true
		}
	}

	for i := range standings {
		if standings[i].Place > 3 && leaderPicks[standings[i].PredictedWinner] {
			standings[i].PlaceAsString = "e-" + ordinal(standings[i].Place)
		}
	}
}

// PlaceAsString renders a place number as its ordinal with the bracket's
// state prefix: "e-" when eliminated (which wins over the tie marker), "T-"
// when tied, nothing otherwise.
func PlaceAsString(place int, tied bool, eliminated bool) string {
	s := ordinal(place)
	if eliminated {
		return "e-" + s
	}
	if tied {
		return "T-" + s
	}
	return s
}

// ordinal renders 1 as "1st", 2 as "2nd" and so on. The teens are special:
// 11, 12 and 13 (and 111, 112, ...) always take "th".
func ordinal(place int) string {
	suffix := "th"
	switch place % 100 {
	case 11, 12, 13:
	default:
		switch place % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", place, suffix)
}
