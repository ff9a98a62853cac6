// Package journal records the changes applied to a board during one session
// in SQLite. The default DSN keeps the database in process memory; a file DSN
// makes the session inspectable after exit but is never read back.
package journal

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/quadboard/pkg/types"
)

// ErrJournalClosed is returned by operations on a closed journal.
var ErrJournalClosed = errors.New("journal is closed")

// Entry is one recorded change.
type Entry struct {
	EntryID    string           `json:"entry_id"` // UUID v7.
	Seq        int64            `json:"seq"`      // 1-based, in recording order.
	Kind       types.ChangeKind `json:"kind"`
	Page       int              `json:"page"`
	ItemID     string           `json:"item_id,omitempty"`
	QuadrantID string           `json:"quadrant_id,omitempty"`
	Detail     string           `json:"detail,omitempty"` // JSON layout for layout changes.
	RecordedAt time.Time        `json:"recorded_at"`
}

// Journal is an append-only change log backed by SQLite.
type Journal struct {
	mu     sync.Mutex
	db     *sql.DB
	seq    int64
	closed bool
	logger *zap.Logger
	now    func() time.Time
}

// Open opens the journal at dsn, creates its schema, and clears entries from
// any previous session. Use types.MemoryJournal for an in-memory journal.
func Open(dsn string, logger *zap.Logger) (*Journal, error) {
	if dsn == "" {
		dsn = types.MemoryJournal
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init journal schema: %w", err)
		}
	}

	logger.Debug("journal opened", zap.String("dsn", dsn))
	return &Journal{
		db:     db,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Record appends c to the journal.
func (j *Journal) Record(c types.Change) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return ErrJournalClosed
	}

	var detail sql.NullString
	if len(c.Layout) > 0 {
		data, err := json.Marshal(c.Layout)
		if err != nil {
			return fmt.Errorf("marshal layout: %w", err)
		}
		detail = sql.NullString{String: string(data), Valid: true}
	}

	seq := j.seq + 1
	_, err := j.db.Exec(
		`INSERT INTO changes (entry_id, seq, kind, page, item_id, quadrant_id, detail, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		generateUUID(), seq, string(c.Kind), c.Page,
		nullable(c.ItemID), nullable(c.QuadrantID), detail,
		j.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record change: %w", err)
	}
	j.seq = seq
	return nil
}

// Entries returns every recorded entry in recording order.
func (j *Journal) Entries() ([]Entry, error) {
	return j.query(`SELECT entry_id, seq, kind, page, item_id, quadrant_id, detail, recorded_at
		FROM changes ORDER BY seq`)
}

// EntriesOfKind returns the recorded entries of one kind in recording order.
func (j *Journal) EntriesOfKind(kind types.ChangeKind) ([]Entry, error) {
	return j.query(`SELECT entry_id, seq, kind, page, item_id, quadrant_id, detail, recorded_at
		FROM changes WHERE kind = ? ORDER BY seq`, string(kind))
}

func (j *Journal) query(q string, args ...any) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil, ErrJournalClosed
	}

	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                        Entry
			kind, recordedAt         string
			itemID, quadrant, detail sql.NullString
		)
		if err := rows.Scan(&e.EntryID, &e.Seq, &kind, &e.Page, &itemID, &quadrant, &detail, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.Kind = types.ChangeKind(kind)
		e.ItemID = itemID.String
		e.QuadrantID = quadrant.String
		e.Detail = detail.String
		e.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parse recorded_at: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal: %w", err)
	}
	return entries, nil
}

// Follow subscribes the journal to b so every change is recorded. Recording
// failures are logged, not returned: observers cannot fail a mutation. The
// returned func stops following.
func (j *Journal) Follow(b types.Board) (cancel func()) {
	return b.Subscribe(func(c types.Change) {
		if err := j.Record(c); err != nil {
			j.logger.Warn("journal record failed",
				zap.String("kind", string(c.Kind)),
				zap.Int("page", c.Page),
				zap.Error(err))
		}
	})
}

// Close releases the database. Close is idempotent.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil
	}
	j.closed = true
	return j.db.Close()
}

// generateUUID generates a new UUID v7 for entry IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
