package handlers

import (
	"sort"

	"github.com/courtside/hoopsapi/models"
	"github.com/courtside/hoopsapi/stats"
)

// totalsRow is the aggregated-stats shape shared by season, career and
// game responses.
type totalsRow struct {
	PlayerID    string   `json:"playerId"`
	Name        string   `json:"name"`
	SeasonLabel string   `json:"seasonLabel,omitempty"`
	Games       int      `json:"games"`
	Minutes     *float64 `json:"minutes,omitempty"`

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

	DoubleDoubles int `json:"doubleDoubles"`
	TripleDoubles int `json:"tripleDoubles"`

	Metrics stats.Metrics `json:"metrics"`
}

func newTotalsRow(t *stats.Totals, name, seasonLabel string) totalsRow {
	row := totalsRow{
		PlayerID:    t.Key.PlayerID,
		Name:        name,
		SeasonLabel: seasonLabel,
		Games:       t.GamesPlayed,

		Points:    t.Points,
		Rebounds:  t.Rebounds,
		Assists:   t.Assists,
		Turnovers: t.Turnovers,
		Steals:    t.Steals,
		Blocks:    t.Blocks,

		TwoPM:   t.TwoPM,
		TwoPA:   t.TwoPA,
		ThreePM: t.ThreePM,
		ThreePA: t.ThreePA,
		FTM:     t.FTM,
		FTA:     t.FTA,

		DoubleDoubles: t.DoubleDoubles,
		TripleDoubles: t.TripleDoubles,

		Metrics: stats.Derive(t),
	}
	if t.MinutesTracked {
		m := t.Minutes
		row.Minutes = &m
	}
	return row
}

// sortByPoints orders totals rows for table display, leading scorer first.
func sortByPoints(rows []totalsRow) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Points > rows[j].Points })
}

// rowsForSeason filters the full stat-row collection to one season. The
// whole collection stays the unit of normalization so the minutes rule sees
// every row, but aggregation for a season page only folds that season.
func rowsForSeason(all []models.StatLine, season int) []models.StatLine {
	out := make([]models.StatLine, 0, len(all))
	for _, r := range all {
		if r.Season == season {
			out = append(out, r)
		}
	}
	return out
}
