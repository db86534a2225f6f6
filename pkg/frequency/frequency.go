// Package frequency maps canonical words to commonness tiers.
//
// Tier 1 is the most common band and tier 4 the least common listed band.
// Membership must be explicit: any word missing from a table is tier 5, so
// unseen words are treated as the rarest.
package frequency

import (
	"fmt"
	"strings"
	"sync"

	"github.com/japaniel/lyricvocab/pkg/db"
)

const (
	MostCommon = 1
	// LeastListed is the highest tier a table may store explicitly.
	LeastListed = 4
	// Unlisted is returned for words absent from the table.
	Unlisted = 5
)

// Classifier assigns a commonness tier to a canonical word.
type Classifier interface {
	Tier(word string) int
}

// Table is an immutable word→tier lookup. It is safe for concurrent use
// without locking because it is never written after construction.
type Table struct {
	tiers map[string]int
}

// NewTable copies tiers into a Table. Every tier must be in [1,4].
func NewTable(tiers map[string]int) (*Table, error) {
	m := make(map[string]int, len(tiers))
	for w, t := range tiers {
		if t < MostCommon || t > LeastListed {
			return nil, fmt.Errorf("word %q: tier %d outside [%d,%d]", w, t, MostCommon, LeastListed)
		}
		m[w] = t
	}
	return &Table{tiers: m}, nil
}

// Tier returns the word's tier, or Unlisted if the table does not know it.
func (t *Table) Tier(word string) int {
	if tier, ok := t.tiers[word]; ok {
		return tier
	}
	return Unlisted
}

// Len returns the number of listed words.
func (t *Table) Len() int { return len(t.tiers) }

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table. It is built once and shared.
func Default() *Table {
	defaultOnce.Do(func() {
		m := make(map[string]int, 800)
		// Lower tiers are added first and win on overlap.
		for i, list := range []string{tier1Words, tier2Words, tier3Words, tier4Words} {
			for _, w := range strings.Fields(list) {
				if _, exists := m[w]; !exists {
					m[w] = i + 1
				}
			}
		}
		defaultTable = &Table{tiers: m}
	})
	return defaultTable
}

// Merge returns a new table holding base overlaid with overlay.
func Merge(base, overlay *Table) *Table {
	m := make(map[string]int, len(base.tiers)+len(overlay.tiers))
	for w, t := range base.tiers {
		m[w] = t
	}
	for w, t := range overlay.tiers {
		m[w] = t
	}
	return &Table{tiers: m}
}

// LoadTable builds a table from the lexicon store. Rows at tier 5 or above
// are skipped since absence already means Unlisted.
func LoadTable(conn db.DBExecutor) (*Table, error) {
	lexemes, err := db.ListLexemes(conn)
	if err != nil {
		return nil, fmt.Errorf("list lexemes: %w", err)
	}
	m := make(map[string]int, len(lexemes))
	for _, lx := range lexemes {
		if lx.Tier < MostCommon || lx.Tier > LeastListed {
			continue
		}
		m[lx.Word] = lx.Tier
	}
	return &Table{tiers: m}, nil
}
