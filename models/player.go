package models

import "strings"

// Player is static identity reference data joined into every aggregation.
type Player struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Number    *int   `json:"number,omitempty"`
	GradYear  *int   `json:"gradYear,omitempty"`
}

// FullName joins first and last name, tolerating either being empty.
func (p *Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// RosterEntry links a player to a season squad.
type RosterEntry struct {
	PlayerID string `json:"playerId"`
	Season   int    `json:"season"`
	Number   *int   `json:"number,omitempty"`
}
