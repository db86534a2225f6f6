package lexicon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/japaniel/lyricvocab/pkg/db"
)

// Importer loads ranked lists into the lexicon tables.
type Importer struct {
	DB            *sql.DB
	BatchSize     int
	FlushInterval time.Duration
	// Logger is used for progress messages. nil means slog.Default().
	Logger *slog.Logger
	// OnProgress is called after every submitted batch with entries submitted so far and total.
	OnProgress func(current, total int)
}

// NewImporter creates an Importer with default batching.
func NewImporter(conn *sql.DB) *Importer {
	return &Importer{
		DB:            conn,
		BatchSize:     500,
		FlushInterval: 200 * time.Millisecond,
	}
}

// Import upserts entries under list and records the import. It returns the
// number of committed entries. source is stored for provenance only.
func (im *Importer) Import(ctx context.Context, entries []Entry, list, source string) (int, error) {
	if list == "" {
		return 0, errors.New("lexicon: list name is required")
	}
	logger := im.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bw := NewBatchWriter(im.DB, list, im.BatchSize, im.FlushInterval)

	var submitErr error
	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			submitErr = err
			break
		}
		if err := bw.Submit(e); err != nil {
			submitErr = err
			break
		}
		if im.OnProgress != nil && im.BatchSize > 0 && (i+1)%im.BatchSize == 0 {
			im.OnProgress(i+1, len(entries))
		}
	}

	closeErr := bw.Close()
	written := bw.Written()
	if err := errors.Join(submitErr, closeErr); err != nil {
		return written, fmt.Errorf("lexicon: import %s: %w", list, err)
	}
	if im.OnProgress != nil {
		im.OnProgress(len(entries), len(entries))
	}

	id, err := db.RecordImport(im.DB, list, source, written)
	if err != nil {
		return written, err
	}
	logger.Info("lexicon imported",
		slog.String("list", list),
		slog.String("source", source),
		slog.Int("entries", written),
		slog.Int64("import_id", id),
	)
	return written, nil
}

// ImportFile parses the ranked CSV at path and imports it under list.
func (im *Importer) ImportFile(ctx context.Context, path, list string) (int, error) {
	entries, err := ParseRankedFile(path)
	if err != nil {
		return 0, err
	}
	return im.Import(ctx, entries, list, path)
}
