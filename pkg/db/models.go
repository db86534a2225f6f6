package db

import "time"

// Lexeme is one word of an imported frequency list.
type Lexeme struct {
	Word string
	// Rank is the 1-based position in the source list; 0 when unknown.
	Rank int
	Tier int
	List string
}

// Import is a provenance record for a loaded frequency list.
type Import struct {
	ID         int64
	List       string
	Path       string
	Rows       int
	ImportedAt time.Time
}
