package stats

// Derived metrics. Every function returns nil when its denominator is zero:
// a player who never attempted a three has no 3P%, which is not the same as
// shooting 0%. The nil sentinel renders as an em dash downstream.

func value(f float64) *float64 { return &f }

// Percentage returns made/attempted as a percentage, nil when attempted is 0.
func Percentage(made, attempted int) *float64 {
	if attempted <= 0 {
		return nil
	}
	return value(float64(made) / float64(attempted) * 100)
}

// EffectiveFGPct weights three-point makes at 1.5 field goals:
// (FGM + 0.5*3PM) / FGA * 100. Nil when no field goals were attempted.
func EffectiveFGPct(twoPM, twoPA, threePM, threePA int) *float64 {
	fga := twoPA + threePA
	if fga <= 0 {
		return nil
	}
	return value((float64(twoPM+threePM) + 0.5*float64(threePM)) / float64(fga) * 100)
}

// PerGame returns total/games, nil when no games were played.
func PerGame(total, games int) *float64 {
	if games <= 0 {
		return nil
	}
	return value(float64(total) / float64(games))
}

// Per36 returns the total scaled to a 36-minute rate, nil when no minutes
// were recorded.
func Per36(total int, minutes float64) *float64 {
	if minutes <= 0 {
		return nil
	}
	return value(float64(total) * 36 / minutes)
}

// AssistTurnoverRatio is nil when turnovers are zero, even with assists.
func AssistTurnoverRatio(assists, turnovers int) *float64 {
	if turnovers <= 0 {
		return nil
	}
	return value(float64(assists) / float64(turnovers))
}

// ScoringEfficiency is points per true-shooting possession:
// points / (FGA + 0.44*FTA + turnovers). Nil on a zero denominator.
func ScoringEfficiency(points, fga, fta, turnovers int) *float64 {
	den := float64(fga) + 0.44*float64(fta) + float64(turnovers)
	if den <= 0 {
		return nil
	}
	return value(float64(points) / den)
}

// Metrics is the derived-metric bag computed for one aggregated entity,
// handed to rendering collaborators alongside the raw totals.
type Metrics struct {
	FGPct    *float64 `json:"fgPct"`
	TwoPct   *float64 `json:"twoPct"`
	ThreePct *float64 `json:"threePct"`
	FTPct    *float64 `json:"ftPct"`
	EFGPct   *float64 `json:"efgPct"`

	PointsPerGame   *float64 `json:"pointsPerGame"`
	ReboundsPerGame *float64 `json:"reboundsPerGame"`
	AssistsPerGame  *float64 `json:"assistsPerGame"`
	StealsPerGame   *float64 `json:"stealsPerGame"`
	BlocksPerGame   *float64 `json:"blocksPerGame"`

	PointsPer36   *float64 `json:"pointsPer36,omitempty"`
	ReboundsPer36 *float64 `json:"reboundsPer36,omitempty"`

	AssistTurnover *float64 `json:"assistTurnover"`
	Efficiency     *float64 `json:"efficiency"`
}

// Derive computes the full metric bag for one Totals.
func Derive(t *Totals) Metrics {
	m := Metrics{
		FGPct:    Percentage(t.FGM(), t.FGA()),
		TwoPct:   Percentage(t.TwoPM, t.TwoPA),
		ThreePct: Percentage(t.ThreePM, t.ThreePA),
		FTPct:    Percentage(t.FTM, t.FTA),
		EFGPct:   EffectiveFGPct(t.TwoPM, t.TwoPA, t.ThreePM, t.ThreePA),

		PointsPerGame:   PerGame(t.Points, t.GamesPlayed),
		ReboundsPerGame: PerGame(t.Rebounds, t.GamesPlayed),
		AssistsPerGame:  PerGame(t.Assists, t.GamesPlayed),
		StealsPerGame:   PerGame(t.Steals, t.GamesPlayed),
		BlocksPerGame:   PerGame(t.Blocks, t.GamesPlayed),

		AssistTurnover: AssistTurnoverRatio(t.Assists, t.Turnovers),
		Efficiency:     ScoringEfficiency(t.Points, t.FGA(), t.FTA, t.Turnovers),
	}
	if t.MinutesTracked {
		m.PointsPer36 = Per36(t.Points, t.Minutes)
		m.ReboundsPer36 = Per36(t.Rebounds, t.Minutes)
	}
	return m
}
