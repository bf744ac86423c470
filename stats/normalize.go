// Package stats is the aggregation core behind every records page: it
// normalizes raw box-score rows, folds them into totals by grouping key,
// derives shooting/rate metrics, and builds leaderboards.
package stats

import (
	"math"
	"strconv"

	"github.com/courtside/hoopsapi/models"
)

// NormalizeRow coerces a raw decoded record into a canonical StatLine.
// Missing, null, or non-numeric counting stats silently become zero; the
// historical data is too patchy for anything stricter. Minutes stays absent
// unless the field holds a usable number, since presence drives the
// games-played rule.
func NormalizeRow(raw map[string]any) models.StatLine {
	row := models.StatLine{
		PlayerID: str(raw["playerId"]),
		GameID:   count(raw["gameId"]),
		Season:   count(raw["season"]),

		Points:    count(raw["points"]),
		Rebounds:  count(raw["rebounds"]),
		Assists:   count(raw["assists"]),
		Turnovers: count(raw["turnovers"]),
		Steals:    count(raw["steals"]),
		Blocks:    count(raw["blocks"]),

		TwoPM:   count(raw["twoPM"]),
		TwoPA:   count(raw["twoPA"]),
		ThreePM: count(raw["threePM"]),
		ThreePA: count(raw["threePA"]),
		FTM:     count(raw["ftm"]),
		FTA:     count(raw["fta"]),
	}

	if v, ok := raw["minutes"]; ok {
		if m, ok := num(v); ok {
			row.Minutes = &m
		}
	}
	return row
}

// NormalizeRows maps NormalizeRow over a whole collection.
func NormalizeRows(raws []map[string]any) []models.StatLine {
	rows := make([]models.StatLine, len(raws))
	for i, r := range raws {
		rows[i] = NormalizeRow(r)
	}
	return rows
}

// num extracts a finite float from whatever json.Unmarshal produced.
func num(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func count(v any) int {
	f, ok := num(v)
	if !ok {
		return 0
	}
	return int(f)
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
