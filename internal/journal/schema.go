package journal

// Journal DDL. Timestamps are stored as RFC 3339 text.
const (
	createChanges = `CREATE TABLE IF NOT EXISTS changes (
    entry_id TEXT PRIMARY KEY,
    seq INTEGER NOT NULL UNIQUE,
    kind TEXT NOT NULL,
    page INTEGER NOT NULL,
    item_id TEXT,
    quadrant_id TEXT,
    detail TEXT,
    recorded_at TEXT NOT NULL
);`

	createChangesKindIndex = `CREATE INDEX IF NOT EXISTS idx_changes_kind ON changes (kind);`

	// A journal covers one session; rows left by an earlier process that
	// pointed at the same file are discarded on Open.
	resetChanges = `DELETE FROM changes;`
)

var schemaStatements = []string{
	createChanges,
	createChangesKindIndex,
	resetChanges,
}
