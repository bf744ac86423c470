package models

import "fmt"

// GameType classifies a contest within a season.
type GameType string

const (
	GameRegion           GameType = "region"
	GameTournament       GameType = "tournament"
	GameShowcase         GameType = "showcase"
	GameRegionTournament GameType = "region-tournament"
	GameStateTournament  GameType = "state-tournament"
)

// Game is a single contest. The ID is an 8-digit YYYYMMDD-encoded integer for
// historical seasons. Score fields and Result are populated only when Completed
// is true.
type Game struct {
	ID            int      `json:"id"`
	Season        int      `json:"season"` // starting year, 2024 means "2024-25"
	Date          string   `json:"date,omitempty"`
	Opponent      string   `json:"opponent"`
	Location      string   `json:"location"` // home, away, neutral
	Type          GameType `json:"type"`
	Completed     bool     `json:"completed"`
	TeamScore     *int     `json:"teamScore,omitempty"`
	OpponentScore *int     `json:"opponentScore,omitempty"`
	Result        *string  `json:"result,omitempty"` // "W" or "L", absent for future games
	ResultMargin  *int     `json:"resultMargin,omitempty"`
	Recap         *string  `json:"recap,omitempty"`
}

// Margin returns the points margin for a completed game: the stored margin if
// present, otherwise TeamScore - OpponentScore. Nil when scores are absent.
func (g *Game) Margin() *int {
	if g.ResultMargin != nil {
		return g.ResultMargin
	}
	if g.TeamScore == nil || g.OpponentScore == nil {
		return nil
	}
	m := *g.TeamScore - *g.OpponentScore
	return &m
}

// DateFromID decodes the YYYYMMDD game identifier into an ISO date string.
// Returns an error when the identifier is not date-encoded.
func DateFromID(id int) (string, error) {
	if id < 10000101 || id > 99991231 {
		return "", fmt.Errorf("game id %d is not YYYYMMDD-encoded", id)
	}
	y, m, d := id/10000, id/100%100, id%100
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return "", fmt.Errorf("game id %d is not YYYYMMDD-encoded", id)
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), nil
}
