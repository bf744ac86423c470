package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/courtside/hoopsapi/dataset"
	"github.com/courtside/hoopsapi/models"
	"github.com/courtside/hoopsapi/stats"
)

type recordBoard struct {
	Key     string        `json:"key"`
	Label   string        `json:"label"`
	Entries []stats.Entry `json:"entries"`
}

type gameRecordEntry struct {
	PlayerID    string  `json:"playerId"`
	PlayerName  string  `json:"playerName"`
	GameID      int     `json:"gameId"`
	Season      int     `json:"season"`
	SeasonLabel string  `json:"seasonLabel"`
	Opponent    string  `json:"opponent,omitempty"`
	Date        string  `json:"date,omitempty"`
	Value       float64 `json:"value"`
}

type gameRecordBoard struct {
	Key     string            `json:"key"`
	Label   string            `json:"label"`
	Entries []gameRecordEntry `json:"entries"`
}

// boardLimit reads the optional ?limit= param, defaulting to the standard
// top-20 table. Legacy pages request 10.
func boardLimit(c echo.Context) int {
	n, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || n < 1 || n > stats.TopN {
		return stats.TopN
	}
	return n
}

// SeasonRecords returns the single-season leaderboards, one fixed-length
// board per metric definition.
func (h *Handler) SeasonRecords(c echo.Context) error {
	snap, err := h.snapshot(c)
	if err != nil {
		return err
	}

	totals := stats.Aggregate(snap.Rows, stats.ByPlayerSeason)
	identity := func(k stats.GroupKey) (string, string) {
		return snap.PlayerName(k.PlayerID), models.SeasonLabel(k.Season)
	}
	return c.JSON(http.StatusOK, buildBoards(totals, stats.SeasonRecordDefs, identity, boardLimit(c)))
}

// CareerRecords returns the career leaderboards.
func (h *Handler) CareerRecords(c echo.Context) error {
	snap, err := h.snapshot(c)
	if err != nil {
		return err
	}

	totals := stats.Aggregate(snap.Rows, stats.ByPlayer)
	identity := func(k stats.GroupKey) (string, string) {
		return snap.PlayerName(k.PlayerID), ""
	}
	return c.JSON(http.StatusOK, buildBoards(totals, stats.CareerRecordDefs, identity, boardLimit(c)))
}

func buildBoards(totals map[stats.GroupKey]*stats.Totals, defs []stats.MetricDef, identity stats.Identity, n int) []recordBoard {
	boards := make([]recordBoard, 0, len(defs))
	for _, def := range defs {
		boards = append(boards, recordBoard{
			Key:     def.Key,
			Label:   def.Label,
			Entries: stats.Build(totals, def, identity, n),
		})
	}
	return boards
}

// GameRecords returns the single-game records. Unlike the season and career
// boards these keep every row tied for the record.
func (h *Handler) GameRecords(c echo.Context) error {
	snap, err := h.snapshot(c)
	if err != nil {
		return err
	}

	boards := make([]gameRecordBoard, 0, len(stats.GameRecordDefs))
	for _, def := range stats.GameRecordDefs {
		holders := stats.TiedForFirst(snap.Rows, def.Value)
		entries := make([]gameRecordEntry, 0, len(holders))
		for _, r := range holders {
			entries = append(entries, newGameRecordEntry(snap, r, def.Value(r)))
		}
		boards = append(boards, gameRecordBoard{Key: def.Key, Label: def.Label, Entries: entries})
	}
	return c.JSON(http.StatusOK, boards)
}

func newGameRecordEntry(snap *dataset.Snapshot, r models.StatLine, value float64) gameRecordEntry {
	e := gameRecordEntry{
		PlayerID:    r.PlayerID,
		PlayerName:  snap.PlayerName(r.PlayerID),
		GameID:      r.GameID,
		Season:      r.Season,
		SeasonLabel: models.SeasonLabel(r.Season),
		Value:       value,
	}
	if g, ok := snap.GamesByID[r.GameID]; ok {
		e.Opponent = g.Opponent
		e.Date = g.Date
	}
	return e
}
