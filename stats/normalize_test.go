package stats

import (
	"testing"

	"github.com/courtside/hoopsapi/models"
)

func TestNormalizeRow(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want models.StatLine
	}{
		{
			name: "Empty record",
			raw:  map[string]any{},
			want: models.StatLine{},
		},
		{
			name: "Well-formed record",
			raw: map[string]any{
				"playerId": "p1",
				"gameId":   float64(20240112),
				"season":   float64(2023),
				"minutes":  float64(28),
				"points":   float64(17),
				"rebounds": float64(6),
				"threePM":  float64(3),
				"threePA":  float64(7),
			},
			want: models.StatLine{
				PlayerID: "p1",
				GameID:   20240112,
				Season:   2023,
				Minutes:  fptr(28),
				Points:   17,
				Rebounds: 6,
				ThreePM:  3,
				ThreePA:  7,
			},
		},
		{
			name: "Null and non-numeric stats coerce to zero",
			raw: map[string]any{
				"playerId": "p2",
				"points":   nil,
				"rebounds": "abc",
				"assists":  true,
				"steals":   "4",
			},
			want: models.StatLine{PlayerID: "p2", Steals: 4},
		},
		{
			name: "Null minutes stays absent",
			raw: map[string]any{
				"playerId": "p3",
				"minutes":  nil,
				"points":   float64(5),
			},
			want: models.StatLine{PlayerID: "p3", Points: 5},
		},
		{
			name: "Zero minutes stays present",
			raw: map[string]any{
				"playerId": "p4",
				"minutes":  float64(0),
			},
			want: models.StatLine{PlayerID: "p4", Minutes: fptr(0)},
		},
		{
			name: "Stringified minutes parses",
			raw: map[string]any{
				"playerId": "p5",
				"minutes":  "31.5",
			},
			want: models.StatLine{PlayerID: "p5", Minutes: fptr(31.5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRow(tt.raw)
			if !statLinesEqual(got, tt.want) {
				t.Errorf("NormalizeRow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func fptr(f float64) *float64 { return &f }

func statLinesEqual(a, b models.StatLine) bool {
	if (a.Minutes == nil) != (b.Minutes == nil) {
		return false
	}
	if a.Minutes != nil && *a.Minutes != *b.Minutes {
		return false
	}
	a.Minutes, b.Minutes = nil, nil
	return a == b
}
