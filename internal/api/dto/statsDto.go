package dto

// RankingEntry is one row of the global top-50 ranking.
type RankingEntry struct {
	Item    ItemResponse `json:"item"`
	Average float64      `json:"average"`
	Votes   int64        `json:"votes"`
}

type GlobalRankingResponse struct {
	Type    string         `json:"type"`
	Entries []RankingEntry `json:"entries"`
}

// CategoryStats is the admin stats panel row: item count plus the
// point-weighted mean of every score across the category's items.
type CategoryStats struct {
	CategoryID int64   `json:"category_id"`
	Name       string  `json:"name"`
	ItemCount  int64   `json:"item_count"`
	Average    float64 `json:"average"`
}

type StatsResponse struct {
	TotalItems int64           `json:"total_items"`
	Categories []CategoryStats `json:"categories"`
}

// RankingPanelCategory groups a category's items by manual sort key for the
// curation panel.
type RankingPanelCategory struct {
	Category CategoryResponse `json:"category"`
	Items    []ItemResponse   `json:"items"`
}

// ImportSummary reports the outcome of a CSV upload.
type ImportSummary struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
