/* api_test.go
 * Contains unit tests for api.go - testing all public API methods
 */

package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bracket-pool/api/shared"
	"bracket-pool/api/store"
)

// fullBracketNames returns 13 winner names in game order: AFC wildcard, NFC
// wildcard, AFC divisional, NFC divisional, AFC championship, NFC
// championship, Super Bowl. All favourites win except the wildcard round
// going to the hosting seeds.
func fullBracketNames() []string {
	return []string{
		"Bills", "Ravens", "Texans", // AFC wildcard, games 1-3
		"Eagles", "Buccaneers", "Rams", // NFC wildcard, games 4-6
		"Chiefs", "Bills", // AFC divisional, games 7-8
		"Lions", "Eagles", // NFC divisional, games 9-10
		"Chiefs", "Lions", // championships, games 11-12
		"Chiefs", // Super Bowl, game 13
	}
}

func submitFullBracket(t *testing.T, a *API, userID string, username string) {
	t.Helper()
	err := a.SubmitBracket(shared.User{UserID: userID, Username: username}, fullBracketNames())
	if err != nil {
		t.Fatalf("Expected no error submitting bracket, got: %s", err.Error())
	}
}

// region NewAPI tests

func TestNewAPI_MissingParameters(t *testing.T) {
	tests := []struct {
		name   string
		dbName string
		season string
	}{
		{"missing dbName", "", "2025-playoffs"},
		{"missing season", "db", ""},
		{"all missing", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAPI(tt.dbName, "mongodb://localhost", tt.season)
			if err == nil {
				t.Errorf("Expected error for %s, got nil", tt.name)
			}
		})
	}
}

// endregion

// region SubmitBracket tests

func TestSubmitBracket_Success(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}

	submitFullBracket(t, api, "user1", "testuser")

	bracket, ok := mockStore.Brackets["user1"]
	if !ok {
		t.Fatal("Bracket was not stored")
	}
	if bracket.Username != "testuser" {
		t.Errorf("Expected username testuser, got %s", bracket.Username)
	}
	if len(bracket.Picks) != requiredPicks {
		t.Errorf("Expected %d picks, got %d", requiredPicks, len(bracket.Picks))
	}
	if !bracket.Submitted {
		t.Error("Expected a full bracket to be marked submitted")
	}
	if bracket.PredictedWinner != "Chiefs" {
		t.Errorf("Expected predicted winner Chiefs, got %s", bracket.PredictedWinner)
	}
	if bracket.CurrentScore != 0 {
		t.Errorf("Expected current score 0 with no results in, got %d", bracket.CurrentScore)
	}
	if want := mockStore.Season.Points.Total(); bracket.MaxPossibleScore != want {
		t.Errorf("Expected max possible score %d, got %d", want, bracket.MaxPossibleScore)
	}
}

func TestSubmitBracket_WrongNumberOfTeams(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}

	err := api.SubmitBracket(shared.User{UserID: "user1", Username: "testuser"}, []string{"Bills", "Ravens"})
	if err == nil {
		t.Fatal("Expected error for wrong number of teams, got nil")
	}
	if !strings.Contains(err.Error(), "incorrect number of teams") {
		t.Errorf("Expected error about incorrect number of teams, got: %s", err.Error())
	}
}

func TestSubmitBracket_InvalidTeamName(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}

	names := fullBracketNames()
	names[0] = "Jets" // not a playoff team

	err := api.SubmitBracket(shared.User{UserID: "user1", Username: "testuser"}, names)
	if err == nil {
		t.Fatal("Expected error for invalid team name, got nil")
	}
	if !strings.Contains(err.Error(), "'Jets'") {
		t.Errorf("Expected the invalid name in the error, got: %s", err.Error())
	}
}

func TestSubmitBracket_WinnerNotInGame(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}

	names := fullBracketNames()
	// Chiefs have a bye and do not play a wildcard game
	names[0] = "Chiefs"

	err := api.SubmitBracket(shared.User{UserID: "user1", Username: "testuser"}, names)
	if err == nil {
		t.Fatal("Expected error for a winner outside its game, got nil")
	}
	if !strings.Contains(err.Error(), "does not play in game 1") {
		t.Errorf("Expected error naming game 1, got: %s", err.Error())
	}
}

func TestSubmitBracket_ConsistentReseeding(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}

	// All wildcard upsets: AFC winners are seeds 7, 6, 5, so the divisional
	// pairings reseed to 1v7 and 5v6
	names := []string{
		"Broncos", "Steelers", "Chargers",
		"Packers", "Commanders", "Vikings",
		"Chiefs", "Chargers",
		"Lions", "Vikings",
		"Chiefs", "Lions",
		"Chiefs",
	}
	err := api.SubmitBracket(shared.User{UserID: "user1", Username: "testuser"}, names)
	if err != nil {
		t.Errorf("Expected reseeded bracket to be accepted, got: %s", err.Error())
	}
}

func TestSubmitBracket_StripsQuotes(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}

	names := fullBracketNames()
	names[0] = "\"Bills\""

	err := api.SubmitBracket(shared.User{UserID: "user1", Username: "testuser"}, names)
	if err != nil {
		t.Errorf("Expected quoted names to be accepted, got: %s", err.Error())
	}
}

func TestSubmitBracket_ScoresAgainstExistingResults(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	mockStore.Master = &store.MasterBracket{
		Season: "2025-playoffs",
		Picks: []shared.Pick{
			{Conference: shared.AFC, Round: shared.WildcardRound, PointValue: 1, GameNumber: 1, WinnerID: "afc-7", WinnerName: "Broncos"},
		},
	}
	api := &API{Store: mockStore}

	submitFullBracket(t, api, "user1", "testuser")

	bracket := mockStore.Brackets["user1"]
	if bracket.CurrentScore != 0 {
		t.Errorf("Expected current score 0 after a wrong wildcard pick, got %d", bracket.CurrentScore)
	}
	// Once the wildcard round has any result every wildcard pick is judged:
	// all six are wrong here, and the dead Bills and Eagles divisional picks
	// come off the maximum too
	want := mockStore.Season.Points.Total() - 6 - 4
	if bracket.MaxPossibleScore != want {
		t.Errorf("Expected max possible score %d, got %d", want, bracket.MaxPossibleScore)
	}
}

func TestSubmitBracket_StoreErrorPropagates(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	mockStore.StoreBracketError = fmt.Errorf("connection lost")
	api := &API{Store: mockStore}

	err := api.SubmitBracket(shared.User{UserID: "user1", Username: "testuser"}, fullBracketNames())
	if err == nil {
		t.Fatal("Expected store error to propagate, got nil")
	}
}

// endregion

// region CheckBracket tests

func TestCheckBracket_NoBracket(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}

	_, err := api.CheckBracket(shared.User{UserID: "user1", Username: "testuser"})
	if err == nil {
		t.Error("Expected error when the user has no bracket, got nil")
	}
}

func TestCheckBracket_ReportsPickStatus(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}
	submitFullBracket(t, api, "user1", "testuser")

	mockStore.Master = &store.MasterBracket{
		Season: "2025-playoffs",
		Picks: []shared.Pick{
			{Conference: shared.AFC, Round: shared.WildcardRound, PointValue: 1, GameNumber: 1, WinnerID: "afc-2", WinnerName: "Bills"},
			{Conference: shared.AFC, Round: shared.WildcardRound, PointValue: 1, GameNumber: 2, WinnerID: "afc-6", WinnerName: "Steelers"},
		},
	}

	report, err := api.CheckBracket(shared.User{UserID: "user1", Username: "testuser"})
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}

	if !strings.Contains(report, "- Bills: [Succeeded]") {
		t.Errorf("Expected Bills pick to succeed, report:\n%s", report)
	}
	if !strings.Contains(report, "- Ravens: [Failed]") {
		t.Errorf("Expected Ravens pick to fail, report:\n%s", report)
	}
	if !strings.Contains(report, "- Chiefs: [Pending]") {
		t.Errorf("Expected Chiefs divisional pick to be pending, report:\n%s", report)
	}
	if !strings.Contains(report, "Score: 1") {
		t.Errorf("Expected score line, report:\n%s", report)
	}
}

func TestCheckBracket_DeadLaterPicksShownFailed(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}
	submitFullBracket(t, api, "user1", "testuser")

	// Bills lose their wildcard game: the user's Bills divisional pick is a
	// dead pick even though the divisional round has no results yet
	mockStore.Master = &store.MasterBracket{
		Season: "2025-playoffs",
		Picks: []shared.Pick{
			{Conference: shared.AFC, Round: shared.WildcardRound, PointValue: 1, GameNumber: 1, WinnerID: "afc-7", WinnerName: "Broncos"},
		},
	}

	report, err := api.CheckBracket(shared.User{UserID: "user1", Username: "testuser"})
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}

	if !strings.Contains(report, "[Divisional]\n- Chiefs: [Pending]\n- Bills: [Failed]") {
		t.Errorf("Expected the dead Bills divisional pick marked failed, report:\n%s", report)
	}
}

// endregion

// region BuildBracket tests

func TestBuildBracket_FullView(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}
	submitFullBracket(t, api, "user1", "testuser")

	view, err := api.BuildBracket(shared.User{UserID: "user1", Username: "testuser"})
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}

	if len(view.AFCRounds) != 3 || len(view.NFCRounds) != 3 {
		t.Fatalf("Expected 3 rounds per conference, got %d AFC and %d NFC", len(view.AFCRounds), len(view.NFCRounds))
	}
	if view.SuperBowl == nil {
		t.Fatal("Expected the Super Bowl round to be present")
	}
	if view.SuperBowl.Games[0].SelectedWinner != "afc-1" {
		t.Errorf("Expected Chiefs selected in the Super Bowl, got %s", view.SuperBowl.Games[0].SelectedWinner)
	}
}

func TestBuildBracket_PartialPicksStopAtWildcard(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	mockStore.Brackets["user1"] = store.CreateSampleBracket("user1", "testuser", "2025-playoffs")
	api := &API{Store: mockStore}

	view, err := api.BuildBracket(shared.User{UserID: "user1", Username: "testuser"})
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}

	// Wildcard picks are complete, so the divisional matchups are known but
	// undecided and nothing past them exists
	if len(view.AFCRounds) != 2 {
		t.Fatalf("Expected AFC wildcard and divisional rounds, got %d rounds", len(view.AFCRounds))
	}
	if view.AFCRounds[1].Games[0].SelectedWinner != "" {
		t.Error("Expected the divisional games to be undecided")
	}
	if view.SuperBowl != nil {
		t.Error("Expected no Super Bowl round for a wildcard-only bracket")
	}
}

func TestBuildBracket_MarksCorrectness(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}
	submitFullBracket(t, api, "user1", "testuser")

	mockStore.Master = &store.MasterBracket{
		Season: "2025-playoffs",
		Picks: []shared.Pick{
			{Conference: shared.AFC, Round: shared.WildcardRound, PointValue: 1, GameNumber: 1, WinnerID: "afc-2", WinnerName: "Bills"},
		},
	}

	view, err := api.BuildBracket(shared.User{UserID: "user1", Username: "testuser"})
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}

	game := view.AFCRounds[0].Games[0]
	if game.IsCorrect == nil || !*game.IsCorrect {
		t.Error("Expected the Bills wildcard pick to be marked correct")
	}
}

// endregion

// region SetMasterResult tests

func TestSetMasterResult_RecordsAndRescores(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}
	submitFullBracket(t, api, "user1", "testuser")

	err := api.SetMasterResult(1, "Bills")
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}

	if mockStore.Master == nil || len(mockStore.Master.Picks) != 1 {
		t.Fatal("Expected one master pick to be stored")
	}
	pick := mockStore.Master.Picks[0]
	if pick.WinnerID != "afc-2" || pick.GameNumber != 1 {
		t.Errorf("Expected game 1 won by afc-2, got game %d won by %s", pick.GameNumber, pick.WinnerID)
	}

	bracket := mockStore.Brackets["user1"]
	if bracket.CurrentScore != 1 {
		t.Errorf("Expected brackets rescored to 1 point, got %d", bracket.CurrentScore)
	}
}

func TestSetMasterResult_OverwritesSameGame(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}

	if err := api.SetMasterResult(1, "Bills"); err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}
	if err := api.SetMasterResult(1, "Broncos"); err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}

	if len(mockStore.Master.Picks) != 1 {
		t.Fatalf("Expected the game 1 result to be replaced, got %d picks", len(mockStore.Master.Picks))
	}
	if mockStore.Master.Picks[0].WinnerID != "afc-7" {
		t.Errorf("Expected Broncos after correction, got %s", mockStore.Master.Picks[0].WinnerID)
	}
}

func TestSetMasterResult_UnknownMatchup(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}

	// The divisional matchups are unknown until every wildcard result is in
	err := api.SetMasterResult(7, "Chiefs")
	if err == nil {
		t.Fatal("Expected error for a game with no known matchup, got nil")
	}
	if !strings.Contains(err.Error(), "no known matchup") {
		t.Errorf("Expected error about unknown matchup, got: %s", err.Error())
	}
}

func TestSetMasterResult_WinnerNotInGame(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}

	err := api.SetMasterResult(1, "Lions")
	if err == nil {
		t.Fatal("Expected error for a team outside the game, got nil")
	}
	if !strings.Contains(err.Error(), "does not play in game 1") {
		t.Errorf("Expected error naming game 1, got: %s", err.Error())
	}
}

// endregion

// region SyncMasterResults tests

const syncScoreboard = `{
	"events": [
		{
			"name": "Denver Broncos at Buffalo Bills",
			"competitions": [
				{
					"status": {"type": {"completed": true, "state": "post"}},
					"competitors": [
						{"homeAway": "home", "winner": true, "score": "31", "team": {"displayName": "Buffalo Bills"}},
						{"homeAway": "away", "winner": false, "score": "17", "team": {"displayName": "Denver Broncos"}}
					]
				}
			]
		},
		{
			"name": "Green Bay Packers at Detroit Lions",
			"competitions": [
				{
					"status": {"type": {"completed": false, "state": "pre"}},
					"competitors": [
						{"homeAway": "home", "score": "", "team": {"displayName": "Detroit Lions"}},
						{"homeAway": "away", "score": "", "team": {"displayName": "Green Bay Packers"}}
					]
				}
			]
		}
	]
}`

func TestSyncMasterResults_FillsCompletedGames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(syncScoreboard))
	}))
	defer server.Close()

	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore, ScoreboardURL: server.URL}
	submitFullBracket(t, api, "user1", "testuser")

	err := api.SyncMasterResults()
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}

	if mockStore.Master == nil || len(mockStore.Master.Picks) != 1 {
		t.Fatal("Expected exactly the completed game to be recorded")
	}
	pick := mockStore.Master.Picks[0]
	if pick.GameNumber != 1 || pick.WinnerID != "afc-2" {
		t.Errorf("Expected game 1 won by afc-2, got game %d won by %s", pick.GameNumber, pick.WinnerID)
	}

	if mockStore.Brackets["user1"].CurrentScore != 1 {
		t.Errorf("Expected brackets rescored to 1 point, got %d", mockStore.Brackets["user1"].CurrentScore)
	}
}

func TestSyncMasterResults_NoCompletedGames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"events": []}`))
	}))
	defer server.Close()

	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore, ScoreboardURL: server.URL}

	err := api.SyncMasterResults()
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}
	if mockStore.Master != nil {
		t.Error("Expected no master bracket write when nothing changed")
	}
}

func TestSyncMasterResults_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore, ScoreboardURL: server.URL}

	err := api.SyncMasterResults()
	if err == nil {
		t.Error("Expected error when the scoreboard request fails, got nil")
	}
}

// endregion

// region RescoreBrackets tests

func TestRescoreBrackets_UpdatesStoredScores(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}
	submitFullBracket(t, api, "user1", "testuser")
	submitFullBracket(t, api, "user2", "otheruser")

	mockStore.Master = &store.MasterBracket{
		Season: "2025-playoffs",
		Picks: []shared.Pick{
			{Conference: shared.AFC, Round: shared.WildcardRound, PointValue: 1, GameNumber: 1, WinnerID: "afc-2", WinnerName: "Bills"},
		},
	}

	err := api.RescoreBrackets()
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}

	for _, userID := range []string{"user1", "user2"} {
		if got := mockStore.Brackets[userID].CurrentScore; got != 1 {
			t.Errorf("Expected %s rescored to 1 point, got %d", userID, got)
		}
	}
}

// endregion

// region Standings tests

func TestGetStandings_NoBrackets(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}

	response, err := api.GetStandings()
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}
	if !strings.Contains(response, "No submitted brackets") {
		t.Errorf("Expected empty standings message, got: %s", response)
	}
}

func TestGetStandings_RanksByScore(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	mockStore.Brackets["user1"] = store.Bracket{
		UserID: "user1", Username: "alice", Submitted: true,
		CurrentScore: 10, MaxPossibleScore: 20, PredictedWinner: "Chiefs",
	}
	mockStore.Brackets["user2"] = store.Bracket{
		UserID: "user2", Username: "bob", Submitted: true,
		CurrentScore: 12, MaxPossibleScore: 18, PredictedWinner: "Lions",
	}
	api := &API{Store: mockStore}

	response, err := api.GetStandings()
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}

	bobIdx := strings.Index(response, "bob")
	aliceIdx := strings.Index(response, "alice")
	if bobIdx == -1 || aliceIdx == -1 || bobIdx > aliceIdx {
		t.Errorf("Expected bob ranked above alice, got:\n%s", response)
	}
	if !strings.Contains(response, "1st: bob, 12 points (max 18), picked Lions") {
		t.Errorf("Expected formatted first place line, got:\n%s", response)
	}
}

func TestStandings_SkipsUnsubmitted(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	mockStore.Brackets["user1"] = store.CreateSampleBracket("user1", "partial", "2025-playoffs")
	api := &API{Store: mockStore}

	standings, err := api.Standings()
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}
	if len(standings) != 0 {
		t.Errorf("Expected partial brackets excluded from standings, got %d rows", len(standings))
	}
}

// endregion

// region GetTeams tests

func TestGetTeams_GroupedAndSeeded(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}

	teams, err := api.GetTeams()
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}

	if len(teams) != 14 {
		t.Fatalf("Expected 14 teams, got %d", len(teams))
	}
	if teams[0] != "Chiefs (AFC 1)" {
		t.Errorf("Expected top AFC seed first, got %s", teams[0])
	}
	if teams[7] != "Lions (NFC 1)" {
		t.Errorf("Expected top NFC seed eighth, got %s", teams[7])
	}
}

// endregion

// region GetRemainingGames tests

func TestGetRemainingGames_NoResults(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}

	games, err := api.GetRemainingGames()
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}

	// Only the wildcard matchups are known before any results are in
	if len(games) != 6 {
		t.Fatalf("Expected 6 open wildcard games, got %d", len(games))
	}
	if !strings.Contains(games[0], "Game 1 (AFC Wildcard): Bills vs Broncos") {
		t.Errorf("Expected game 1 matchup, got: %s", games[0])
	}
}

func TestGetRemainingGames_AdvancesWithResults(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}

	// Complete the AFC wildcard round with the hosting seeds winning
	for game, team := range map[int]string{1: "Bills", 2: "Ravens", 3: "Texans"} {
		if err := api.SetMasterResult(game, team); err != nil {
			t.Fatalf("Expected no error recording game %d, got: %s", game, err.Error())
		}
	}

	games, err := api.GetRemainingGames()
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}

	// The 3 NFC wildcard games stay open and the 2 AFC divisional matchups
	// are now known
	if len(games) != 5 {
		t.Fatalf("Expected 5 open games, got %d", len(games))
	}
	joined := strings.Join(games, "")
	if !strings.Contains(joined, "Game 7 (AFC Divisional): Chiefs vs Texans") {
		t.Errorf("Expected reseeded divisional matchup, got:\n%s", joined)
	}
	if !strings.Contains(joined, "Game 8 (AFC Divisional): Bills vs Ravens") {
		t.Errorf("Expected second divisional matchup, got:\n%s", joined)
	}
}

// endregion

// region GetSeasonInfo tests

func TestGetSeasonInfo_Contents(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	api := &API{Store: mockStore}

	values, err := api.GetSeasonInfo()
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}

	joined := strings.Join(values, "\n")
	for _, want := range []string{
		"Season: 2025-playoffs",
		"Year: 2025",
		"wildcard 1, divisional 2, conference 3, super bowl 5",
		"Maximum possible score: 25",
		"Number of required picks: 13",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected season info to contain %q, got:\n%s", want, joined)
		}
	}
}

// endregion

// region error propagation tests

func TestOperations_SeasonErrorPropagates(t *testing.T) {
	mockStore := NewMockStore("2025-playoffs")
	mockStore.EnsureSeasonError = fmt.Errorf("database unreachable")
	api := &API{Store: mockStore}

	if err := api.SubmitBracket(shared.User{UserID: "u", Username: "u"}, fullBracketNames()); err == nil {
		t.Error("Expected SubmitBracket to propagate the season error")
	}
	if _, err := api.CheckBracket(shared.User{UserID: "u", Username: "u"}); err == nil {
		t.Error("Expected CheckBracket to propagate the season error")
	}
	if _, err := api.GetTeams(); err == nil {
		t.Error("Expected GetTeams to propagate the season error")
	}
	if _, err := api.GetRemainingGames(); err == nil {
		t.Error("Expected GetRemainingGames to propagate the season error")
	}
}

// endregion
