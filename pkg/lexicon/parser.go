// Package lexicon loads ranked frequency lists into the SQLite lexicon.
package lexicon

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/japaniel/lyricvocab/pkg/lyrics"
)

// Entry is one word of a ranked list.
type Entry struct {
	Word string
	Rank int
	Tier int
}

// ParseRanked reads an NGSL-style CSV: a header row, then one word per row in
// frequency order. Only the first column is used. Rows whose word normalizes
// to nothing are skipped without consuming a rank; repeated words keep their
// first (best) rank.
func ParseRanked(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// Skip header row.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	seen := make(map[string]struct{})
	var entries []Entry
	rank := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		word := lyrics.Normalize(record[0])
		if word == "" {
			continue
		}
		rank++
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}

		entries = append(entries, Entry{Word: word, Rank: rank, Tier: TierForRank(rank)})
	}

	return entries, nil
}

// ParseRankedFile opens path and parses it with ParseRanked.
func ParseRankedFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open list: %w", err)
	}
	defer f.Close()
	return ParseRanked(f)
}

// TierForRank maps a 1-based frequency rank to a frequency tier.
//
//	1-500     → 1
//	501-1000  → 2
//	1001-2000 → 3
//	2001-3000 → 4
//	3001+     → 5
func TierForRank(rank int) int {
	switch {
	case rank <= 500:
		return 1
	case rank <= 1000:
		return 2
	case rank <= 2000:
		return 3
	case rank <= 3000:
		return 4
	default:
		return 5
	}
}
