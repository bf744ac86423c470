package stats

import (
	"math"
	"sort"

	"github.com/courtside/hoopsapi/models"
)

// Leaderboard lengths. Season and career record tables render a fixed number
// of rows; short lists are padded with placeholders so the table layout never
// changes.
const (
	TopN       = 20
	LegacyTopN = 10
)

// Entry is one leaderboard row. Placeholder entries carry a zero value, a
// dash display and no player identity.
type Entry struct {
	Rank        int    `json:"rank"`
	PlayerID    string `json:"playerId,omitempty"`
	PlayerName  string `json:"playerName,omitempty"`
	Season      int    `json:"season,omitempty"`
	SeasonLabel string `json:"seasonLabel,omitempty"`
	Games       int    `json:"games,omitempty"`

	Value       float64 `json:"value"`
	Display     string  `json:"display"`
	Placeholder bool    `json:"placeholder,omitempty"`
}

// Identity resolves a grouping key to the player name and season label shown
// on the leaderboard row.
type Identity func(GroupKey) (name, seasonLabel string)

// Build ranks aggregated entities by one metric definition: apply the
// qualification predicate, drop undefined and non-positive values, sort
// descending, truncate to n and pad with placeholders. Candidates are walked
// in key order before the stable sort, so tied values keep a deterministic
// encounter order.
func Build(totals map[GroupKey]*Totals, def MetricDef, identity Identity, n int) []Entry {
	keys := make([]GroupKey, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].PlayerID != keys[j].PlayerID {
			return keys[i].PlayerID < keys[j].PlayerID
		}
		if keys[i].Season != keys[j].Season {
			return keys[i].Season < keys[j].Season
		}
		return keys[i].GameID < keys[j].GameID
	})

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		t := totals[k]
		if def.Qualify != nil && !def.Qualify(t) {
			continue
		}
		v := def.Value(t)
		if v == nil || *v <= 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
			continue
		}
		name, label := identity(k)
		entries = append(entries, Entry{
			PlayerID:    k.PlayerID,
			PlayerName:  name,
			Season:      k.Season,
			SeasonLabel: label,
			Games:       t.GamesPlayed,
			Value:       *v,
			Display:     def.Format(v),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Value > entries[j].Value })

	if len(entries) > n {
		entries = entries[:n]
	}
	for len(entries) < n {
		entries = append(entries, Entry{Display: NoValue, Placeholder: true})
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// TiedForFirst returns every row whose value equals the running maximum: the
// single-game records policy keeps all holders of a tied record rather than a
// fixed-length table. Rows with non-positive values never hold a record.
func TiedForFirst(rows []models.StatLine, value func(models.StatLine) float64) []models.StatLine {
	best := 0.0
	var holders []models.StatLine
	for _, r := range rows {
		v := value(r)
		if v <= 0 {
			continue
		}
		switch {
		case v > best:
			best = v
			holders = holders[:0]
			holders = append(holders, r)
		case v == best:
			holders = append(holders, r)
		}
	}
	return holders
}
