package eventlog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	// registers the "sqlite" driver
	_ "github.com/glebarez/go-sqlite"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

const defaultBatchSize = 1000

// SQLite buffers events and writes them in batches to a SQLite database.
// Buffered events are flushed when the batch is full, on Close and at exit.
type SQLite struct {
	db        *sql.DB
	statement *sql.Stmt
	path      string
	runID     string
	batchSize int

	mu      sync.Mutex
	pending []Event
	closed  bool
}

// NewSQLite creates dir/<name>.sqlite3. An empty name picks a fresh xid.
func NewSQLite(dir, name string) (*SQLite, error) {
	if name == "" {
		name = "plantctl_events_" + xid.New().String()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("eventlog: create dir: %w", err)
	}

	path := filepath.Join(dir, name+".sqlite3")
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("eventlog: file %s already exists", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("eventlog: open %s: %w", path, err)
	}

	w := &SQLite{
		db:        db,
		path:      path,
		runID:     name,
		batchSize: defaultBatchSize,
	}
	if err := w.createTable(); err != nil {
		db.Close()
		return nil, err
	}

	atexit.Register(func() { w.Close() })
	return w, nil
}

// SetBatchSize changes how many events are buffered before a write.
func (w *SQLite) SetBatchSize(n int) {
	if n < 1 {
		n = 1
	}
	w.mu.Lock()
	w.batchSize = n
	w.mu.Unlock()
}

func (w *SQLite) Path() string { return w.path }

func (w *SQLite) createTable() error {
	_, err := w.db.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			run     TEXT NOT NULL,
			day     INTEGER NOT NULL,
			source  TEXT,
			kind    TEXT NOT NULL,
			message TEXT,
			fields  TEXT
		)`)
	if err != nil {
		return fmt.Errorf("eventlog: create table: %w", err)
	}

	w.statement, err = w.db.Prepare(
		`INSERT INTO events (run, day, source, kind, message, fields) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("eventlog: prepare insert: %w", err)
	}
	return nil
}

func (w *SQLite) Log(e Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.pending = append(w.pending, e)
	if len(w.pending) >= w.batchSize {
		w.flushLocked()
	}
}

// Flush writes every buffered event.
func (w *SQLite) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.flushLocked()
}

func (w *SQLite) flushLocked() {
	if len(w.pending) == 0 || w.closed {
		return
	}

	tx, err := w.db.Begin()
	if err != nil {
		slog.Error("eventlog: begin", "err", err)
		return
	}
	stmt := tx.Stmt(w.statement)
	for _, e := range w.pending {
		fields, err := json.Marshal(e.Fields)
		if err != nil {
			fields = []byte("{}")
		}
		if _, err := stmt.Exec(w.runID, e.Day, e.Source, string(e.Kind), e.Message, string(fields)); err != nil {
			slog.Error("eventlog: insert", "err", err, "kind", e.Kind)
			tx.Rollback()
			return
		}
	}
	if err := tx.Commit(); err != nil {
		slog.Error("eventlog: commit", "err", err)
		return
	}
	w.pending = nil
}

// Close flushes and closes the database. Calling it again is a no-op.
func (w *SQLite) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.flushLocked()
	w.closed = true
	w.statement.Close()
	return w.db.Close()
}

// Count returns how many events of kind were stored. An empty kind counts
// everything.
func (w *SQLite) Count(kind Kind) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var n int
	var err error
	if kind == "" {
		err = w.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&n)
	} else {
		err = w.db.QueryRow(`SELECT COUNT(*) FROM events WHERE kind = ?`, string(kind)).Scan(&n)
	}
	return n, err
}
