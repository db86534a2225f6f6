package db

// migrationsSQL holds the lexicon schema. Statements are separated by ';'
// and applied in order by InitDB.
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS lexemes (
	word TEXT PRIMARY KEY,
	rank INTEGER,
	tier INTEGER NOT NULL CHECK (tier BETWEEN 1 AND 5),
	list TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_lexemes_tier ON lexemes(tier);

CREATE TABLE IF NOT EXISTS imports (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	list TEXT NOT NULL,
	path TEXT NOT NULL DEFAULT '',
	row_count INTEGER NOT NULL DEFAULT 0,
	imported_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
