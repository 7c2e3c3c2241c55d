package entity

// AggregateCell is the derived per-slot summary of a heatmap. It is computed
// on demand from the respondent set and never stored. Intensity is
// AvailableCount/TotalRespondents normalized to [0,1], 0 when nobody has
// responded yet. Name lists preserve the respondents' arrival order.
type AggregateCell struct {
	Index            int      `json:"index"`
	AvailableCount   int      `json:"available_count"`
	TotalRespondents int      `json:"total_respondents"`
	Intensity        float64  `json:"intensity"`
	AvailableNames   []string `json:"available_names"`
	UnavailableNames []string `json:"unavailable_names"`
}
