package models

// StatLine is one player's box-score line for one game. Minutes is optional:
// legacy seasons did not track it, and the games-played rule depends on
// whether it is present at all (see stats.Aggregate).
type StatLine struct {
	PlayerID string   `json:"playerId"`
	GameID   int      `json:"gameId"`
	Season   int      `json:"season"`
	Minutes  *float64 `json:"minutes,omitempty"`

	Points    int `json:"points"`
	Rebounds  int `json:"rebounds"`
	Assists   int `json:"assists"`
	Turnovers int `json:"turnovers"`
	Steals    int `json:"steals"`
	Blocks    int `json:"blocks"`

	TwoPM   int `json:"twoPM"`
	TwoPA   int `json:"twoPA"`
	ThreePM int `json:"threePM"`
	ThreePA int `json:"threePA"`
	FTM     int `json:"ftm"`
	FTA     int `json:"fta"`
}

// FGM returns combined field goals made.
func (s *StatLine) FGM() int { return s.TwoPM + s.ThreePM }

// FGA returns combined field goals attempted.
func (s *StatLine) FGA() int { return s.TwoPA + s.ThreePA }
