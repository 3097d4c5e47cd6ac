package entity

import "time"

// LiveGame is one live contest rendered per refresh. Score and Total carry
// the "N/A" placeholder when the upstream payload gave nothing usable.
type LiveGame struct {
	Matchup string `json:"matchup"`
	Score   string `json:"score"`
	Total   string `json:"total"`
}

// Snapshot is the full result of one poll cycle.
type Snapshot struct {
	URL       string     `json:"url"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Games     []LiveGame `json:"games"`
}
