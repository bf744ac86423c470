package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/courtside/hoopsapi/models"
	"github.com/courtside/hoopsapi/stats"
)

type seasonSummary struct {
	Season       int     `json:"season"`
	Label        string  `json:"label"`
	Coach        *string `json:"coach,omitempty"`
	RegionFinish *string `json:"regionFinish,omitempty"`
	StateFinish  *string `json:"stateFinish,omitempty"`
	Games        int     `json:"games"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
}

type gameJSON struct {
	ID            int     `json:"id"`
	Season        int     `json:"season"`
	Date          string  `json:"date,omitempty"`
	Opponent      string  `json:"opponent"`
	Location      string  `json:"location"`
	Type          string  `json:"type"`
	Completed     bool    `json:"completed"`
	TeamScore     *int    `json:"teamScore,omitempty"`
	OpponentScore *int    `json:"opponentScore,omitempty"`
	Result        *string `json:"result,omitempty"`
	Margin        *int    `json:"margin,omitempty"`
	Recap         *string `json:"recap,omitempty"`
}

type seasonDetail struct {
	Season       int         `json:"season"`
	Label        string      `json:"label"`
	Coach        *string     `json:"coach,omitempty"`
	RegionFinish *string     `json:"regionFinish,omitempty"`
	StateFinish  *string     `json:"stateFinish,omitempty"`
	Wins         int         `json:"wins"`
	Losses       int         `json:"losses"`
	Schedule     []gameJSON  `json:"schedule"`
	PlayerTotals []totalsRow `json:"playerTotals"`
}

func newGameJSON(g *models.Game) gameJSON {
	return gameJSON{
		ID:            g.ID,
		Season:        g.Season,
		Date:          g.Date,
		Opponent:      g.Opponent,
		Location:      g.Location,
		Type:          string(g.Type),
		Completed:     g.Completed,
		TeamScore:     g.TeamScore,
		OpponentScore: g.OpponentScore,
		Result:        g.Result,
		Margin:        g.Margin(),
		Recap:         g.Recap,
	}
}

func record(games []models.Game, season int) (wins, losses, total int) {
	for _, g := range games {
		if season != 0 && g.Season != season {
			continue
		}
		total++
		if !g.Completed || g.Result == nil {
			continue
		}
		switch *g.Result {
		case "W":
			wins++
		case "L":
			losses++
		}
	}
	return wins, losses, total
}

// Seasons returns every season in the archive with meta and W-L record,
// newest first.
func (h *Handler) Seasons(c echo.Context) error {
	snap, err := h.snapshot(c)
	if err != nil {
		return err
	}

	years := snap.SeasonYears()
	out := make([]seasonSummary, 0, len(years))
	for _, y := range years {
		wins, losses, total := record(snap.Games, y)
		s := seasonSummary{
			Season: y,
			Label:  models.SeasonLabel(y),
			Games:  total,
			Wins:   wins,
			Losses: losses,
		}
		if meta, ok := snap.Seasons[y]; ok {
			s.Coach = meta.Coach
			s.RegionFinish = meta.RegionFinish
			s.StateFinish = meta.StateFinish
		}
		out = append(out, s)
	}
	return c.JSON(http.StatusOK, out)
}

// SeasonDetail returns one season's schedule plus per-player totals and
// derived metrics.
func (h *Handler) SeasonDetail(c echo.Context) error {
	snap, err := h.snapshot(c)
	if err != nil {
		return err
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid season year")
	}

	schedule := make([]gameJSON, 0)
	for i := range snap.Games {
		if snap.Games[i].Season == year {
			schedule = append(schedule, newGameJSON(&snap.Games[i]))
		}
	}
	if len(schedule) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no such season")
	}
	sort.Slice(schedule, func(i, j int) bool { return schedule[i].ID < schedule[j].ID })

	totals := stats.Aggregate(rowsForSeason(snap.Rows, year), stats.ByPlayerSeason)
	rows := make([]totalsRow, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, newTotalsRow(t, snap.PlayerName(t.Key.PlayerID), models.SeasonLabel(year)))
	}
	sortByPoints(rows)

	wins, losses, _ := record(snap.Games, year)
	detail := seasonDetail{
		Season:       year,
		Label:        models.SeasonLabel(year),
		Wins:         wins,
		Losses:       losses,
		Schedule:     schedule,
		PlayerTotals: rows,
	}
	if meta, ok := snap.Seasons[year]; ok {
		detail.Coach = meta.Coach
		detail.RegionFinish = meta.RegionFinish
		detail.StateFinish = meta.StateFinish
	}
	return c.JSON(http.StatusOK, detail)
}
