package domain

import "time"

// ProjectionRecord is a stored projection, as kept by the history repository.
type ProjectionRecord struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Input     ProjectionInput  `json:"input"`
	Result    ProjectionResult `json:"result"`
}
