/* parser.go
 * Contains the logic for parsing the ESPN scoreboard json into game results
 */

package external

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ParseScoreboard converts the raw scoreboard json into game results. Events
// that have not started or are still in progress come back with Completed
// false and no winner; events missing a home or away competitor are skipped
// rather than failing the whole parse.
// Preconditions: Receives the raw response body
// Postconditions: Returns a slice of GameResult in scoreboard order, or an
// error if the body is not valid json
func ParseScoreboard(body []byte) ([]GameResult, error) {
	var response scoreboardResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode scoreboard json: %w", err)
	}

	var results []GameResult
	for _, event := range response.Events {
		if len(event.Competitions) == 0 {
			continue
		}
		competition := event.Competitions[0]

		var home, away *scoreboardCompetitor
		for i := range competition.Competitors {
			switch competition.Competitors[i].HomeAway {
			case "home":
				home = &competition.Competitors[i]
			case "away":
				away = &competition.Competitors[i]
			}
		}
		if home == nil || away == nil {
			continue
		}

		result := GameResult{
			HomeTeam:  home.Team.DisplayName,
			AwayTeam:  away.Team.DisplayName,
			HomeScore: parseScore(home.Score),
			AwayScore: parseScore(away.Score),
			Completed: competition.Status.Type.Completed,
		}
		if result.Completed {
			if home.Winner {
				result.Winner = home.Team.DisplayName
			} else if away.Winner {
				result.Winner = away.Team.DisplayName
			}
		}
		results = append(results, result)
	}
	return results, nil
}

// parseScore converts the string score field, returning 0 for anything
// unparseable (pregame events report no score)
func parseScore(score string) int {
	n, err := strconv.Atoi(score)
	if err != nil {
		return 0
	}
	return n
}
