package handlers

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/courtside/hoopsapi/models"
	"github.com/courtside/hoopsapi/stats"
)

type boxScoreSubmission struct {
	GameID int              `json:"gameId"`
	Rows   []map[string]any `json:"rows"`
}

// SubmitBoxScore validates hand-entered box-score rows for one game and
// returns the season's full stat-row array with the new rows merged in.
// Nothing is persisted: the maintainer pastes the array back into the static
// data file and redeploys.
func (h *Handler) SubmitBoxScore(c echo.Context) error {
	snap, err := h.snapshot(c)
	if err != nil {
		return err
	}

	var sub boxScoreSubmission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	game, ok := snap.GamesByID[sub.GameID]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no such game")
	}
	if len(sub.Rows) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no rows submitted")
	}

	entered := make([]models.StatLine, 0, len(sub.Rows))
	for i, raw := range sub.Rows {
		row := stats.NormalizeRow(raw)
		row.GameID = game.ID
		row.Season = game.Season
		if row.PlayerID == "" {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("row %d: playerId is required", i))
		}
		if msg := impossibleShots(row); msg != "" {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("row %d (%s): %s", i, row.PlayerID, msg))
		}
		entered = append(entered, row)
	}

	// Replace any existing rows for this game, keep the rest of the season.
	merged := make([]models.StatLine, 0, len(snap.Rows)+len(entered))
	for _, r := range snap.Rows {
		if r.Season == game.Season && r.GameID != game.ID {
			merged = append(merged, r)
		}
	}
	merged = append(merged, entered...)
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].GameID != merged[j].GameID {
			return merged[i].GameID < merged[j].GameID
		}
		return merged[i].PlayerID < merged[j].PlayerID
	})

	zap.L().Info("box score entered",
		zap.String("sport", c.Param("sport")),
		zap.Int("gameId", game.ID),
		zap.Int("rows", len(entered)),
	)
	return c.JSONPretty(http.StatusOK, merged, "  ")
}

// ExportSeason returns the stored stat-row array for one season, pretty
// printed for copy-paste back into the data files.
func (h *Handler) ExportSeason(c echo.Context) error {
	snap, err := h.snapshot(c)
	if err != nil {
		return err
	}
	season, err := strconv.Atoi(c.QueryParam("season"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing or invalid season param")
	}
	return c.JSONPretty(http.StatusOK, rowsForSeason(snap.Rows, season), "  ")
}

// Reload re-reads the data directory, swapping in a fresh snapshot only on
// full success.
func (h *Handler) Reload(c echo.Context) error {
	if err := h.store.Load(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusOK)
}

func impossibleShots(r models.StatLine) string {
	switch {
	case r.TwoPM > r.TwoPA:
		return "two-point makes exceed attempts"
	case r.ThreePM > r.ThreePA:
		return "three-point makes exceed attempts"
	case r.FTM > r.FTA:
		return "free-throw makes exceed attempts"
	}
	return ""
}
