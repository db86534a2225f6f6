// Package export writes learning items as two-column flashcard files.
package export

import (
	"bufio"
	"io"
	"strings"

	"github.com/japaniel/lyricvocab/pkg/vocab"
)

// fieldCleaner keeps every record on one line with exactly two columns.
var fieldCleaner = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// WriteTSV writes one "word<TAB>back" line per item. The back is the
// translation, else the translation error, else empty.
func WriteTSV(w io.Writer, items []vocab.LearningItem) error {
	bw := bufio.NewWriter(w)
	for _, it := range items {
		back := it.Translation
		if back == "" {
			back = it.TranslationError
		}
		if _, err := bw.WriteString(fieldCleaner.Replace(it.Word) + "\t" + fieldCleaner.Replace(back) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FormatTSV is WriteTSV into a string.
func FormatTSV(items []vocab.LearningItem) string {
	var sb strings.Builder
	_ = WriteTSV(&sb, items)
	return sb.String()
}
