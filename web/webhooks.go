package web

import (
	"encoding/json"
	"log"
	"net/http"
)

// ScoreEvent is the payload a score provider posts when game results change
type ScoreEvent struct {
	League string `json:"league"`
	Season string `json:"season"`
	Event  string `json:"event"`
}

func isRelevantLeague(league string) bool {
	return league == "nfl"
}

// ScoresWebhookHandler HTTP endpoint that receives a webhook when playoff
// scores change, used to kick off syncing the master bracket and rescoring
// every stored bracket
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter
// and Http Request
// Postconditions: Kicks off the master bracket sync in the background
func (s *Server) ScoresWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var event ScoreEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Println("failed to decode webhook:", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if !isRelevantLeague(event.League) {
		w.WriteHeader(http.StatusOK)
		return
	}

	log.Printf("score event league=%s season=%s event=%s\n", event.League, event.Season, event.Event)

	// Kick async pipeline so the provider gets its 200 without waiting on the
	// scoreboard fetch and rescore
	go func() {
		if err := s.api.SyncMasterResults(); err != nil {
			log.Println("SyncMasterResults failed:", err)
		}
	}()

	w.WriteHeader(http.StatusOK)
}

// StandingsHandler HTTP endpoint that serves the current pool standings as
// JSON rows, ranked the same way the bot's $standings command ranks them
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter
// and Http Request
// Postconditions: Writes the standings rows, or a 500 if building them fails
func (s *Server) StandingsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	standings, err := s.api.Standings()
	if err != nil {
		log.Println("failed to build standings:", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(standings); err != nil {
		log.Println("failed to encode standings:", err)
	}
}
