package stats

import "github.com/courtside/hoopsapi/models"

// GroupKey identifies one aggregated entity. Unused dimensions stay at their
// zero value: a career key has Season and GameID zero, a season key has
// GameID zero.
type GroupKey struct {
	PlayerID string
	Season   int
	GameID   int
}

// KeyFunc extracts the grouping key for a row.
type KeyFunc func(models.StatLine) GroupKey

// ByPlayer groups rows across all seasons (career totals).
func ByPlayer(r models.StatLine) GroupKey { return GroupKey{PlayerID: r.PlayerID} }

// ByPlayerSeason groups rows within one season (season totals).
func ByPlayerSeason(r models.StatLine) GroupKey {
	return GroupKey{PlayerID: r.PlayerID, Season: r.Season}
}

// ByPlayerGame keeps rows per game (single-game views).
func ByPlayerGame(r models.StatLine) GroupKey {
	return GroupKey{PlayerID: r.PlayerID, Season: r.Season, GameID: r.GameID}
}

// Totals holds cumulative counting stats for one grouping key.
//
// GamesPlayed counts distinct game identifiers, and a game only counts when
// the row satisfies the played rule: minutes > 0 for seasons that track
// minutes, bare row presence for legacy seasons without minutes data.
// MinutesTracked reports whether every summed row came from a
// minutes-tracking season, so per-36 rates know when Minutes is meaningful.
type Totals struct {
	Key            GroupKey
	GamesPlayed    int
	Minutes        float64
	MinutesTracked bool

	Points    int
	Rebounds  int
	Assists   int
	Turnovers int
	Steals    int
	Blocks    int

	TwoPM   int
	TwoPA   int
	ThreePM int
	ThreePA int
	FTM     int
	FTA     int

	DoubleDoubles int
	TripleDoubles int

	games map[int]struct{}
}

// FGM returns combined field goals made.
func (t *Totals) FGM() int { return t.TwoPM + t.ThreePM }

// FGA returns combined field goals attempted.
func (t *Totals) FGA() int { return t.TwoPA + t.ThreePA }

// Aggregate folds rows into totals keyed by key. The fold is commutative and
// associative over rows: the result never depends on input order. Tracking
// the distinct set of game IDs, rather than counting rows, keeps a duplicated
// row for one game from inflating GamesPlayed.
func Aggregate(rows []models.StatLine, key KeyFunc) map[GroupKey]*Totals {
	tracked := seasonsTrackingMinutes(rows)

	out := make(map[GroupKey]*Totals)
	for _, row := range rows {
		k := key(row)
		t, ok := out[k]
		if !ok {
			t = &Totals{Key: k, MinutesTracked: true, games: make(map[int]struct{})}
			out[k] = t
		}

		t.Points += row.Points
		t.Rebounds += row.Rebounds
		t.Assists += row.Assists
		t.Turnovers += row.Turnovers
		t.Steals += row.Steals
		t.Blocks += row.Blocks
		t.TwoPM += row.TwoPM
		t.TwoPA += row.TwoPA
		t.ThreePM += row.ThreePM
		t.ThreePA += row.ThreePA
		t.FTM += row.FTM
		t.FTA += row.FTA

		if !tracked[row.Season] {
			t.MinutesTracked = false
		}
		if row.Minutes != nil {
			t.Minutes += *row.Minutes
		}

		if played(row, tracked) {
			t.games[row.GameID] = struct{}{}
			switch n := TenPlusCategories(row); {
			case n >= 3:
				t.TripleDoubles++
				t.DoubleDoubles++
			case n == 2:
				t.DoubleDoubles++
			}
		}
	}

	for _, t := range out {
		t.GamesPlayed = len(t.games)
	}
	return out
}

// Played reports whether a row counts as a game played under the minutes
// rule, judged against the full row collection the row came from.
func Played(row models.StatLine, all []models.StatLine) bool {
	return played(row, seasonsTrackingMinutes(all))
}

func played(row models.StatLine, tracked map[int]bool) bool {
	if !tracked[row.Season] {
		return true
	}
	return row.Minutes != nil && *row.Minutes > 0
}

// seasonsTrackingMinutes marks each season where at least one row carries a
// minutes value. Seasons absent from the map are legacy, minutes-free eras.
func seasonsTrackingMinutes(rows []models.StatLine) map[int]bool {
	tracked := make(map[int]bool)
	for _, r := range rows {
		if r.Minutes != nil {
			tracked[r.Season] = true
		}
	}
	return tracked
}

// TenPlusCategories counts how many of points, rebounds, assists, steals and
// blocks reach double digits. Two categories make a double-double, three a
// triple-double.
func TenPlusCategories(r models.StatLine) int {
	n := 0
	for _, v := range [5]int{r.Points, r.Rebounds, r.Assists, r.Steals, r.Blocks} {
		if v >= 10 {
			n++
		}
	}
	return n
}
