package stats

import "testing"

func TestFormatters(t *testing.T) {
	tests := []struct {
		name   string
		format func(*float64) string
		in     *float64
		want   string
	}{
		{"Percent nil", FormatPercent, nil, NoValue},
		{"Percent one decimal", FormatPercent, fptr(58.333333), "58.3"},
		{"Percent zero is zero, not a dash", FormatPercent, fptr(0), "0.0"},
		{"Rate nil", FormatRate, nil, NoValue},
		{"Rate", FormatRate, fptr(15), "15.0"},
		{"Ratio nil", FormatRatio, nil, NoValue},
		{"Ratio two decimals", FormatRatio, fptr(2.5), "2.50"},
		{"Count nil", FormatCount, nil, NoValue},
		{"Count truncates", FormatCount, fptr(450), "450"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
