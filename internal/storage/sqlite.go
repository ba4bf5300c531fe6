// Package storage provides the SQLite history ledger: one row per play
// session plus its collection milestones. The ledger is only ever read by
// the records board; sessions never resume from it.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/kemono/internal/core"
)

// Store manages the SQLite database connection for the ledger.
type Store struct {
	db *sql.DB
}

// SessionRecord is one play session.
type SessionRecord struct {
	ID        string
	PackID    string
	Player    string
	Collected int
	Evolved   int
	Unlocked  bool
	StartedAt time.Time
	EndedAt   time.Time // Zero while the session runs or if it crashed
}

// Milestone is a collected, evolved or unlocked event.
type Milestone struct {
	ID        int64
	SessionID string
	PackID    string
	Kind      core.EventKind
	Creature  string
	Form      string
	At        time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			pack_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			collected INTEGER NOT NULL DEFAULT 0,
			evolved INTEGER NOT NULL DEFAULT 0,
			unlocked INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			ended_at DATETIME
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_pack_id ON sessions(pack_id);

		CREATE TABLE IF NOT EXISTS milestones (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			kind TEXT NOT NULL,
			creature TEXT NOT NULL DEFAULT '',
			form TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_milestones_session ON milestones(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// BeginSession records the start of a session and returns its id.
func (s *Store) BeginSession(packID, player string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, pack_id, player) VALUES (?, ?, ?)",
		id, packID, player,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin session: %w", err)
	}
	return id, nil
}

// RecordMilestone appends a milestone to a session.
func (s *Store) RecordMilestone(sessionID string, ev core.Event) error {
	_, err := s.db.Exec(
		"INSERT INTO milestones (session_id, kind, creature, form) VALUES (?, ?, ?, ?)",
		sessionID, string(ev.Kind), ev.Creature, ev.Form,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record milestone: %w", err)
	}
	return nil
}

// EndSession stores the final collection summary of a session.
func (s *Store) EndSession(sessionID string, st core.GameState) error {
	res, err := s.db.Exec(
		`UPDATE sessions
		 SET collected = ?, evolved = ?, unlocked = ?, ended_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		st.Collected, st.Evolved, st.HiddenUnlocked, sessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot end session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("storage: unknown session %s", sessionID)
	}
	return nil
}

// Session returns one session, or nil if it does not exist.
func (s *Store) Session(id string) (*SessionRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, pack_id, player, collected, evolved, unlocked, started_at, ended_at
		 FROM sessions WHERE id = ?`,
		id,
	)
	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return &rec, nil
}

// RecentSessions retrieves the most recent sessions, optionally for one pack.
func (s *Store) RecentSessions(packID string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, pack_id, player, collected, evolved, unlocked, started_at, ended_at
		 FROM sessions
		 WHERE ? = '' OR pack_id = ?
		 ORDER BY started_at DESC, rowid DESC
		 LIMIT ?`,
		packID, packID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// RecentMilestones retrieves the latest milestones, optionally for one pack.
func (s *Store) RecentMilestones(packID string, limit int) ([]Milestone, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT m.id, m.session_id, s.pack_id, m.kind, m.creature, m.form, m.created_at
		 FROM milestones m
		 JOIN sessions s ON s.id = m.session_id
		 WHERE ? = '' OR s.pack_id = ?
		 ORDER BY m.id DESC
		 LIMIT ?`,
		packID, packID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query milestones: %w", err)
	}
	defer rows.Close()

	var out []Milestone
	for rows.Next() {
		var m Milestone
		var kind string
		var at any
		if err := rows.Scan(&m.ID, &m.SessionID, &m.PackID, &kind, &m.Creature, &m.Form, &at); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.Kind = core.EventKind(kind)
		m.At = parseTime(at)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// PackStats contains aggregated statistics for a pack.
type PackStats struct {
	PackID        string
	Sessions      int
	BestCollected int
	Evolutions    int
	Unlocks       int
	LastPlayed    time.Time
}

// AllPackStats retrieves statistics for every pack that has been played.
func (s *Store) AllPackStats() (map[string]*PackStats, error) {
	rows, err := s.db.Query(
		`SELECT pack_id, COUNT(*), MAX(collected), SUM(evolved), SUM(unlocked), MAX(started_at)
		 FROM sessions
		 GROUP BY pack_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PackStats)
	for rows.Next() {
		var ps PackStats
		var lastPlayed any
		if err := rows.Scan(&ps.PackID, &ps.Sessions, &ps.BestCollected, &ps.Evolutions, &ps.Unlocks, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastPlayed = parseTime(lastPlayed)
		stats[ps.PackID] = &ps
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// DiscoveredForms returns how often each evolved form was reached in a pack.
func (s *Store) DiscoveredForms(packID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT m.form, COUNT(*)
		 FROM milestones m
		 JOIN sessions s ON s.id = m.session_id
		 WHERE s.pack_id = ? AND m.kind = ?
		 GROUP BY m.form`,
		packID, string(core.EventEvolved),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query forms: %w", err)
	}
	defer rows.Close()

	forms := make(map[string]int)
	for rows.Next() {
		var form string
		var n int
		if err := rows.Scan(&form, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		forms[form] = n
	}
	return forms, rows.Err()
}

// ClearPack deletes the history of one pack.
func (s *Store) ClearPack(packID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM milestones WHERE session_id IN (SELECT id FROM sessions WHERE pack_id = ?)",
		packID,
	); err != nil {
		return fmt.Errorf("storage: cannot clear milestones: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM sessions WHERE pack_id = ?", packID); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(r rowScanner) (SessionRecord, error) {
	var rec SessionRecord
	var started, ended any
	if err := r.Scan(&rec.ID, &rec.PackID, &rec.Player, &rec.Collected, &rec.Evolved, &rec.Unlocked, &started, &ended); err != nil {
		return SessionRecord{}, err
	}
	rec.StartedAt = parseTime(started)
	rec.EndedAt = parseTime(ended)
	return rec, nil
}

// parseTime handles both time.Time and string datetimes; NULL is the zero time.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
