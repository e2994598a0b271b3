// Package types contains common read-model types used across the application.
package types

import "time"

// Entry is one row of the reputation ranking.
type Entry struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Tier  string  `json:"tier"`
}

// Status is a read-only snapshot of one participant's reputation state.
type Status struct {
	Name           string    `json:"name"`
	Class          string    `json:"class"`
	Date           time.Time `json:"date"`
	Score          float64   `json:"score"`
	TenureBonus    float64   `json:"tenure_bonus"`
	MaxTenureBonus float64   `json:"max_tenure_bonus"`
	Tier           string    `json:"tier"`
	Perks          string    `json:"perks"`
	Events         int       `json:"events"`
}
