package handlers

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/courtside/hoopsapi/models"
	"github.com/courtside/hoopsapi/stats"
)

type playerJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Number   *int   `json:"number,omitempty"`
	GradYear *int   `json:"gradYear,omitempty"`
}

type playerDetail struct {
	Player  playerJSON  `json:"player"`
	Career  *totalsRow  `json:"career,omitempty"`
	Seasons []totalsRow `json:"seasons"`
}

// Players returns the identity list for a sport, ordered by last name.
func (h *Handler) Players(c echo.Context) error {
	snap, err := h.snapshot(c)
	if err != nil {
		return err
	}

	out := make([]playerJSON, 0, len(snap.Players))
	for _, p := range snap.Players {
		out = append(out, playerJSON{ID: p.ID, Name: p.FullName(), Number: p.Number, GradYear: p.GradYear})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return c.JSON(http.StatusOK, out)
}

// PlayerDetail returns a player's career totals and per-season splits.
func (h *Handler) PlayerDetail(c echo.Context) error {
	snap, err := h.snapshot(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	p, ok := snap.Players[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no such player")
	}

	detail := playerDetail{
		Player:  playerJSON{ID: p.ID, Name: p.FullName(), Number: p.Number, GradYear: p.GradYear},
		Seasons: []totalsRow{},
	}

	// Aggregate over the full collection so the minutes rule judges each
	// season from every row, not just this player's.
	if career, ok := stats.Aggregate(snap.Rows, stats.ByPlayer)[stats.GroupKey{PlayerID: id}]; ok {
		row := newTotalsRow(career, p.FullName(), "")
		detail.Career = &row
	}

	for key, t := range stats.Aggregate(snap.Rows, stats.ByPlayerSeason) {
		if key.PlayerID != id {
			continue
		}
		detail.Seasons = append(detail.Seasons, newTotalsRow(t, p.FullName(), models.SeasonLabel(key.Season)))
	}
	sort.Slice(detail.Seasons, func(i, j int) bool {
		return detail.Seasons[i].SeasonLabel < detail.Seasons[j].SeasonLabel
	})

	return c.JSON(http.StatusOK, detail)
}
