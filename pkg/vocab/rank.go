package vocab

import (
	"cmp"
	"slices"
)

// Rank orders items by descending score, then descending count. Full ties
// keep their incoming order.
func Rank(items []LearningItem) {
	slices.SortStableFunc(items, func(a, b LearningItem) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(b.Count, a.Count)
	})
}
