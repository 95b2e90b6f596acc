/* external.go
 * Contains the logic used to fetch postseason results from the ESPN
 * scoreboard api and return them to the higher level functions
 */

package external

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public scoreboard host. Callers can point at a test
// server instead.
const DefaultBaseURL = "https://site.api.espn.com"

const postseasonType = "3"

// The scoreboard is unauthenticated, so be polite: one request every couple
// of seconds
var limiter = rate.NewLimiter(rate.Every(2*time.Second), 1)

// FetchPlayoffResults fetches the postseason scoreboard for a season year
// and parses it into game results.
// Preconditions: Receives the api base url (DefaultBaseURL outside of tests)
// and the season year the playoffs belong to (e.g. 2025 for the games played
// in January 2026)
// Postconditions: Returns a slice of GameResult or an error if it occurs
func FetchPlayoffResults(baseURL string, year int) ([]GameResult, error) {
	body, err := getScoreboard(baseURL, year)
	if err != nil {
		return nil, fmt.Errorf("error fetching scoreboard: %w", err)
	}

	results, err := ParseScoreboard(body)
	if err != nil {
		return nil, fmt.Errorf("error parsing scoreboard: %w", err)
	}
	return results, nil
}

// getScoreboard performs the rate-limited HTTP request and returns the raw
// response body
func getScoreboard(baseURL string, year int) ([]byte, error) {
	parsedURL, err := url.Parse(baseURL + "/apis/site/v2/sports/football/nfl/scoreboard")
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	// Set URL parameters
	params := parsedURL.Query()
	params.Set("seasontype", postseasonType)
	params.Set("dates", fmt.Sprintf("%d", year))
	params.Set("limit", "50")
	parsedURL.RawQuery = params.Encode()

	if err := limiter.Wait(context.TODO()); err != nil {
		return nil, err
	}

	// Create HTTP Request
	client := &http.Client{Timeout: 10 * time.Second}
	request, err := http.NewRequest("GET", parsedURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("User-Agent", "BracketPoolScoreFetcher/1.0")

	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch scoreboard, status code: %d", response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
