package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ThemeEvent is one relayed theme as stored in the journal.
type ThemeEvent struct {
	ID        int64     `json:"id"`
	Theme     Theme     `json:"theme"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

// ThemeJournal keeps a history of relayed themes in SQLite.
type ThemeJournal struct {
	db *sql.DB
}

// OpenThemeJournal opens (creating if needed) the journal database at path.
func OpenThemeJournal(path string) (*ThemeJournal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS theme_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			theme TEXT NOT NULL,
			source TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_theme_events_created ON theme_events(created_at DESC);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create journal schema: %w", err)
	}
	return &ThemeJournal{db: db}, nil
}

// Record appends a theme to the journal.
func (j *ThemeJournal) Record(t Theme, source string) error {
	_, err := j.db.Exec(
		`INSERT INTO theme_events (theme, source, created_at) VALUES (?, ?, ?)`,
		string(t), source, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record theme: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (j *ThemeJournal) Recent(limit int) ([]ThemeEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := j.db.Query(
		`SELECT id, theme, source, created_at FROM theme_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	events := make([]ThemeEvent, 0)
	for rows.Next() {
		var (
			ev    ThemeEvent
			theme string
			ms    int64
		)
		if err := rows.Scan(&ev.ID, &theme, &ev.Source, &ms); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		ev.Theme = Theme(theme)
		ev.CreatedAt = time.UnixMilli(ms)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Close releases the database.
func (j *ThemeJournal) Close() error {
	return j.db.Close()
}
