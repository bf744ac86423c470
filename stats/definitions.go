package stats

import "github.com/courtside/hoopsapi/models"

// MetricDef describes one leaderboard column: what it measures, who
// qualifies, and how the value renders. The records pages are nothing but
// lists of these.
type MetricDef struct {
	Key     string
	Label   string
	Qualify func(*Totals) bool
	Value   func(*Totals) *float64
	Format  func(*float64) string
}

// GameMetricDef is the single-game analogue, valued over one box-score row.
type GameMetricDef struct {
	Key   string
	Label string
	Value func(models.StatLine) float64
}

func minGames(n int) func(*Totals) bool {
	return func(t *Totals) bool { return t.GamesPlayed >= n }
}

func minFGA(n int) func(*Totals) bool {
	return func(t *Totals) bool { return t.FGA() >= n }
}

func minThreePA(n int) func(*Totals) bool {
	return func(t *Totals) bool { return t.ThreePA >= n }
}

func minFTA(n int) func(*Totals) bool {
	return func(t *Totals) bool { return t.FTA >= n }
}

func total(f func(*Totals) int) func(*Totals) *float64 {
	return func(t *Totals) *float64 {
		v := float64(f(t))
		return &v
	}
}

// SeasonRecordDefs are the single-season leaderboards. Qualification floors
// keep three-game wonders off the rate and percentage boards.
var SeasonRecordDefs = []MetricDef{
	{Key: "points", Label: "Points", Value: total(func(t *Totals) int { return t.Points }), Format: FormatCount},
	{Key: "pointsPerGame", Label: "Points Per Game", Qualify: minGames(10),
		Value: func(t *Totals) *float64 { return PerGame(t.Points, t.GamesPlayed) }, Format: FormatRate},
	{Key: "rebounds", Label: "Rebounds", Value: total(func(t *Totals) int { return t.Rebounds }), Format: FormatCount},
	{Key: "reboundsPerGame", Label: "Rebounds Per Game", Qualify: minGames(10),
		Value: func(t *Totals) *float64 { return PerGame(t.Rebounds, t.GamesPlayed) }, Format: FormatRate},
	{Key: "assists", Label: "Assists", Value: total(func(t *Totals) int { return t.Assists }), Format: FormatCount},
	{Key: "assistsPerGame", Label: "Assists Per Game", Qualify: minGames(10),
		Value: func(t *Totals) *float64 { return PerGame(t.Assists, t.GamesPlayed) }, Format: FormatRate},
	{Key: "steals", Label: "Steals", Value: total(func(t *Totals) int { return t.Steals }), Format: FormatCount},
	{Key: "blocks", Label: "Blocks", Value: total(func(t *Totals) int { return t.Blocks }), Format: FormatCount},
	{Key: "threePM", Label: "Three-Pointers Made", Value: total(func(t *Totals) int { return t.ThreePM }), Format: FormatCount},
	{Key: "fgPct", Label: "Field Goal %", Qualify: minFGA(50),
		Value: func(t *Totals) *float64 { return Percentage(t.FGM(), t.FGA()) }, Format: FormatPercent},
	{Key: "threePct", Label: "Three-Point %", Qualify: minThreePA(30),
		Value: func(t *Totals) *float64 { return Percentage(t.ThreePM, t.ThreePA) }, Format: FormatPercent},
	{Key: "ftPct", Label: "Free Throw %", Qualify: minFTA(30),
		Value: func(t *Totals) *float64 { return Percentage(t.FTM, t.FTA) }, Format: FormatPercent},
	{Key: "efgPct", Label: "Effective FG %", Qualify: minFGA(50),
		Value: func(t *Totals) *float64 { return EffectiveFGPct(t.TwoPM, t.TwoPA, t.ThreePM, t.ThreePA) }, Format: FormatPercent},
	{Key: "assistTurnover", Label: "Assist/Turnover Ratio", Qualify: minGames(10),
		Value: func(t *Totals) *float64 { return AssistTurnoverRatio(t.Assists, t.Turnovers) }, Format: FormatRatio},
	{Key: "efficiency", Label: "Scoring Efficiency", Qualify: minGames(10),
		Value: func(t *Totals) *float64 { return ScoringEfficiency(t.Points, t.FGA(), t.FTA, t.Turnovers) }, Format: FormatRatio},
	{Key: "doubleDoubles", Label: "Double-Doubles", Value: total(func(t *Totals) int { return t.DoubleDoubles }), Format: FormatCount},
}

// CareerRecordDefs mirror the season boards with higher volume floors.
var CareerRecordDefs = []MetricDef{
	{Key: "points", Label: "Points", Value: total(func(t *Totals) int { return t.Points }), Format: FormatCount},
	{Key: "pointsPerGame", Label: "Points Per Game", Qualify: minGames(25),
		Value: func(t *Totals) *float64 { return PerGame(t.Points, t.GamesPlayed) }, Format: FormatRate},
	{Key: "rebounds", Label: "Rebounds", Value: total(func(t *Totals) int { return t.Rebounds }), Format: FormatCount},
	{Key: "reboundsPerGame", Label: "Rebounds Per Game", Qualify: minGames(25),
		Value: func(t *Totals) *float64 { return PerGame(t.Rebounds, t.GamesPlayed) }, Format: FormatRate},
	{Key: "assists", Label: "Assists", Value: total(func(t *Totals) int { return t.Assists }), Format: FormatCount},
	{Key: "steals", Label: "Steals", Value: total(func(t *Totals) int { return t.Steals }), Format: FormatCount},
	{Key: "blocks", Label: "Blocks", Value: total(func(t *Totals) int { return t.Blocks }), Format: FormatCount},
	{Key: "threePM", Label: "Three-Pointers Made", Value: total(func(t *Totals) int { return t.ThreePM }), Format: FormatCount},
	{Key: "gamesPlayed", Label: "Games Played", Value: total(func(t *Totals) int { return t.GamesPlayed }), Format: FormatCount},
	{Key: "fgPct", Label: "Field Goal %", Qualify: minFGA(125),
		Value: func(t *Totals) *float64 { return Percentage(t.FGM(), t.FGA()) }, Format: FormatPercent},
	{Key: "threePct", Label: "Three-Point %", Qualify: minThreePA(75),
		Value: func(t *Totals) *float64 { return Percentage(t.ThreePM, t.ThreePA) }, Format: FormatPercent},
	{Key: "ftPct", Label: "Free Throw %", Qualify: minFTA(75),
		Value: func(t *Totals) *float64 { return Percentage(t.FTM, t.FTA) }, Format: FormatPercent},
	{Key: "doubleDoubles", Label: "Double-Doubles", Value: total(func(t *Totals) int { return t.DoubleDoubles }), Format: FormatCount},
}

// GameRecordDefs are the single-game records, built with the tied-for-first
// policy rather than a fixed-length table.
var GameRecordDefs = []GameMetricDef{
	{Key: "points", Label: "Points", Value: func(r models.StatLine) float64 { return float64(r.Points) }},
	{Key: "rebounds", Label: "Rebounds", Value: func(r models.StatLine) float64 { return float64(r.Rebounds) }},
	{Key: "assists", Label: "Assists", Value: func(r models.StatLine) float64 { return float64(r.Assists) }},
	{Key: "steals", Label: "Steals", Value: func(r models.StatLine) float64 { return float64(r.Steals) }},
	{Key: "blocks", Label: "Blocks", Value: func(r models.StatLine) float64 { return float64(r.Blocks) }},
	{Key: "threePM", Label: "Three-Pointers Made", Value: func(r models.StatLine) float64 { return float64(r.ThreePM) }},
	{Key: "ftm", Label: "Free Throws Made", Value: func(r models.StatLine) float64 { return float64(r.FTM) }},
}
