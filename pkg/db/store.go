package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// UpsertLexeme inserts a word or merges it with an existing row. When a word
// appears in several lists the most common tier and the best rank win.
func UpsertLexeme(db DBExecutor, word string, rank, tier int, list string) error {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return fmt.Errorf("word must be non-empty")
	}
	if tier < 1 || tier > 5 {
		return fmt.Errorf("tier must be in [1,5], got %d", tier)
	}
	if rank < 0 {
		return fmt.Errorf("rank must be non-negative, got %d", rank)
	}

	_, err := db.Exec(`INSERT INTO lexemes (word, rank, tier, list)
			  VALUES (?, ?, ?, ?)
			  ON CONFLICT(word)
			  DO UPDATE SET
			    tier = MIN(lexemes.tier, excluded.tier),
			    rank = CASE
			      WHEN lexemes.rank IS NULL THEN excluded.rank
			      WHEN excluded.rank IS NULL THEN lexemes.rank
			      ELSE MIN(lexemes.rank, excluded.rank)
			    END,
			    list = CASE WHEN excluded.tier < lexemes.tier THEN excluded.list ELSE lexemes.list END`,
		trimmed, nullableInt64(int64(rank)), tier, list)
	if err != nil {
		return fmt.Errorf("upsert lexeme: %w", err)
	}
	return nil
}

// LookupLexeme returns the stored row for word. The bool is false when the
// word is not in the lexicon.
func LookupLexeme(db DBExecutor, word string) (Lexeme, bool, error) {
	var lx Lexeme
	var rank sql.NullInt64
	err := db.QueryRow(`SELECT word, rank, tier, list FROM lexemes WHERE word = ?`, word).
		Scan(&lx.Word, &rank, &lx.Tier, &lx.List)
	if err == sql.ErrNoRows {
		return Lexeme{}, false, nil
	}
	if err != nil {
		return Lexeme{}, false, err
	}
	if rank.Valid {
		lx.Rank = int(rank.Int64)
	}
	return lx, true, nil
}

// ListLexemes returns every stored lexeme ordered by word.
func ListLexemes(db DBExecutor) ([]Lexeme, error) {
	rows, err := db.Query(`SELECT word, rank, tier, list FROM lexemes ORDER BY word`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Lexeme
	for rows.Next() {
		var lx Lexeme
		var rank sql.NullInt64
		if err := rows.Scan(&lx.Word, &rank, &lx.Tier, &lx.List); err != nil {
			return nil, err
		}
		if rank.Valid {
			lx.Rank = int(rank.Int64)
		}
		out = append(out, lx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByTier returns the number of stored lexemes per tier.
func CountByTier(db DBExecutor) (map[int]int, error) {
	rows, err := db.Query(`SELECT tier, COUNT(*) FROM lexemes GROUP BY tier`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]int)
	for rows.Next() {
		var tier, n int
		if err := rows.Scan(&tier, &n); err != nil {
			return nil, err
		}
		out[tier] = n
	}
	return out, rows.Err()
}

// RecordImport stores a provenance row for a loaded list and returns its id.
func RecordImport(db DBExecutor, list, path string, rowCount int) (int64, error) {
	if strings.TrimSpace(list) == "" {
		return 0, fmt.Errorf("list must be non-empty")
	}
	res, err := db.Exec(`INSERT INTO imports (list, path, row_count) VALUES (?, ?, ?)`, list, path, rowCount)
	if err != nil {
		return 0, fmt.Errorf("record import: %w", err)
	}
	return res.LastInsertId()
}

// ListImports returns provenance rows, newest first.
func ListImports(db DBExecutor) ([]Import, error) {
	rows, err := db.Query(`SELECT id, list, path, row_count, imported_at FROM imports ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Import
	for rows.Next() {
		var im Import
		if err := rows.Scan(&im.ID, &im.List, &im.Path, &im.Rows, &im.ImportedAt); err != nil {
			return nil, err
		}
		out = append(out, im)
	}
	return out, rows.Err()
}

// nullableInt64 returns nil for 0 (meaning unknown) else the value.
func nullableInt64(v int64) interface{} {
	if v == 0 {
		return nil
	}
	return v
}
