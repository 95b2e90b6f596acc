/* models_test.go
 * Contains unit tests for models.go
 */

package store

import (
	"testing"

	"bracket-pool/api/shared"

	"github.com/stretchr/testify/assert"
)

func fullPickSet() []shared.Pick {
	picks := []shared.Pick{
		{Conference: shared.AFC, Round: shared.WildcardRound, GameNumber: 1, WinnerID: "afc-2", WinnerName: "Bills"},
		{Conference: shared.AFC, Round: shared.WildcardRound, GameNumber: 2, WinnerID: "afc-3", WinnerName: "Ravens"},
		{Conference: shared.AFC, Round: shared.WildcardRound, GameNumber: 3, WinnerID: "afc-4", WinnerName: "Texans"},
		{Conference: shared.NFC, Round: shared.WildcardRound, GameNumber: 4, WinnerID: "nfc-2", WinnerName: "Eagles"},
		{Conference: shared.NFC, Round: shared.WildcardRound, GameNumber: 5, WinnerID: "nfc-3", WinnerName: "Buccaneers"},
		{Conference: shared.NFC, Round: shared.WildcardRound, GameNumber: 6, WinnerID: "nfc-4", WinnerName: "Rams"},
		{Conference: shared.AFC, Round: shared.DivisionalRound, GameNumber: 7, WinnerID: "afc-1", WinnerName: "Chiefs"},
		{Conference: shared.AFC, Round: shared.DivisionalRound, GameNumber: 8, WinnerID: "afc-2", WinnerName: "Bills"},
		{Conference: shared.NFC, Round: shared.DivisionalRound, GameNumber: 9, WinnerID: "nfc-1", WinnerName: "Lions"},
		{Conference: shared.NFC, Round: shared.DivisionalRound, GameNumber: 10, WinnerID: "nfc-2", WinnerName: "Eagles"},
		{Conference: shared.AFC, Round: shared.ConferenceRound, GameNumber: 11, WinnerID: "afc-1", WinnerName: "Chiefs"},
		{Conference: shared.NFC, Round: shared.ConferenceRound, GameNumber: 12, WinnerID: "nfc-1", WinnerName: "Lions"},
		{Conference: shared.RoundSuperBowl, Round: shared.SuperBowlRound, GameNumber: 13, WinnerID: "nfc-1", WinnerName: "Lions"},
	}
	return picks
}

func TestRefreshDerived_FullBracketIsSubmitted(t *testing.T) {
	b := Bracket{Picks: fullPickSet()}
	b.RefreshDerived()

	assert.True(t, b.Submitted)
	assert.Equal(t, "Lions", b.PredictedWinner)
}

func TestRefreshDerived_PartialBracketNotSubmitted(t *testing.T) {
	picks := fullPickSet()
	picks[12].WinnerID = ""
	picks[12].WinnerName = ""

	b := Bracket{Picks: picks}
	b.RefreshDerived()

	assert.False(t, b.Submitted)
	assert.Empty(t, b.PredictedWinner)
}

func TestRefreshDerived_ClearsStalePredictedWinner(t *testing.T) {
	picks := fullPickSet()[:6]

	b := Bracket{Picks: picks, PredictedWinner: "Chiefs", Submitted: true}
	b.RefreshDerived()

	assert.False(t, b.Submitted)
	assert.Empty(t, b.PredictedWinner)
}
