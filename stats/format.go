package stats

import "strconv"

// NoValue is the display sentinel for undefined metrics and placeholder rows.
const NoValue = "—"

// FormatPercent renders a percentage to one decimal, NoValue for nil.
func FormatPercent(v *float64) string {
	if v == nil {
		return NoValue
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

// FormatRate renders a per-game or per-36 rate to one decimal, NoValue for nil.
func FormatRate(v *float64) string {
	if v == nil {
		return NoValue
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

// FormatRatio renders a ratio to two decimals, NoValue for nil.
func FormatRatio(v *float64) string {
	if v == nil {
		return NoValue
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

// FormatCount renders a whole-number total.
func FormatCount(v *float64) string {
	if v == nil {
		return NoValue
	}
	return strconv.Itoa(int(*v))
}
