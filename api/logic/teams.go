/* teams.go
 * Contains the logic for resolving user-entered team names against the
 * season roster
 */

package logic

import (
	"strings"

	"bracket-pool/api/shared"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ResolveTeams matches user-entered team names against the season roster.
// Preconditions: receives a slice of raw user input names and the season's
// team list
// Postconditions: returns the resolved teams in input order and a slice of
// the names that matched nothing
func ResolveTeams(inputNames []string, teams []shared.Team) ([]shared.Team, []string) {
	var resolved []shared.Team
	var invalid []string

	// Match on lowercase for better results
	lookup := make(map[string]shared.Team)
	var namesLower []string
	for _, team := range teams {
		lower := strings.ToLower(team.Name)
		lookup[lower] = team
		namesLower = append(namesLower, lower)
	}

	for _, name := range inputNames {
		lowerName := strings.ToLower(name)
		fuzzyResults := fuzzy.RankFind(lowerName, namesLower)
		if len(fuzzyResults) == 0 {
			invalid = append(invalid, name)
			continue
		}
		// Several candidates: prefer an exact match, otherwise take the best
		// ranked one
		target := ""
		for i := range fuzzyResults {
			if fuzzyResults[i].Target == lowerName {
				target = fuzzyResults[i].Target
			}
		}
		if target == "" {
			target = fuzzyResults[0].Target
		}
		resolved = append(resolved, lookup[target])
	}
	return resolved, invalid
}
