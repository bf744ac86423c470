package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/courtside/hoopsapi/stats"
)

// boxRow is one player's line in a box-score response, with the per-row
// shooting splits a single-game view shows.
type boxRow struct {
	PlayerID string   `json:"playerId"`
	Name     string   `json:"name"`
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

	FGPct    *float64 `json:"fgPct"`
	ThreePct *float64 `json:"threePct"`
	FTPct    *float64 `json:"ftPct"`

	DoubleDouble bool `json:"doubleDouble"`
	TripleDouble bool `json:"tripleDouble"`
}

type boxScoreResponse struct {
	Game gameJSON `json:"game"`
	Box  []boxRow `json:"box"`
}

// GameDetail returns one game and its box score.
func (h *Handler) GameDetail(c echo.Context) error {
	snap, err := h.snapshot(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game id")
	}
	game, ok := snap.GamesByID[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no such game")
	}

	box := make([]boxRow, 0)
	for _, r := range snap.Rows {
		if r.GameID != id {
			continue
		}
		cats := stats.TenPlusCategories(r)
		box = append(box, boxRow{
			PlayerID: r.PlayerID,
			Name:     snap.PlayerName(r.PlayerID),
			Minutes:  r.Minutes,

			Points:    r.Points,
			Rebounds:  r.Rebounds,
			Assists:   r.Assists,
			Turnovers: r.Turnovers,
			Steals:    r.Steals,
			Blocks:    r.Blocks,

			TwoPM:   r.TwoPM,
			TwoPA:   r.TwoPA,
			ThreePM: r.ThreePM,
			ThreePA: r.ThreePA,
			FTM:     r.FTM,
			FTA:     r.FTA,

			FGPct:    stats.Percentage(r.FGM(), r.FGA()),
			ThreePct: stats.Percentage(r.ThreePM, r.ThreePA),
			FTPct:    stats.Percentage(r.FTM, r.FTA),

			DoubleDouble: cats >= 2,
			TripleDouble: cats >= 3,
		})
	}
	sort.SliceStable(box, func(i, j int) bool { return box[i].Points > box[j].Points })

	return c.JSON(http.StatusOK, boxScoreResponse{Game: newGameJSON(game), Box: box})
}
