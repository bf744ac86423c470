package models

import "fmt"

// SeasonMeta is display enrichment for one season. It never feeds aggregation.
type SeasonMeta struct {
	Season       int     `json:"season"` // starting year
	Coach        *string `json:"coach,omitempty"`
	RegionFinish *string `json:"regionFinish,omitempty"`
	StateFinish  *string `json:"stateFinish,omitempty"`
}

// SeasonLabel formats a starting year as the display form "2024-25".
func SeasonLabel(season int) string {
	return fmt.Sprintf("%d-%02d", season, (season+1)%100)
}
