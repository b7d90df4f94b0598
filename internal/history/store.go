package history

import (
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded analysis.
type Entry struct {
	ID           int64
	Timestamp    time.Time
	Text         string
	Label        string
	Confidence   float64
	Sentiment    string
	Polarity     float64
	Subjectivity float64
	Mood         string
}

// Store keeps the analysis history in a SQLite database.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db %s: %w", path, err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		text         TEXT NOT NULL,
		label        TEXT NOT NULL,
		confidence   REAL NOT NULL,
		sentiment    TEXT NOT NULL,
		polarity     REAL NOT NULL,
		subjectivity REAL NOT NULL,
		mood         TEXT NOT NULL,
		analyzed_at  DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_analyses_analyzed_at ON analyses(analyzed_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Insert(entry Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO analyses (text, label, confidence, sentiment, polarity, subjectivity, mood, analyzed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Text, entry.Label, entry.Confidence, entry.Sentiment,
		entry.Polarity, entry.Subjectivity, entry.Mood, entry.Timestamp,
	)
	return err
}

// InsertBatch writes entries inside one transaction.
func (s *Store) InsertBatch(entries []Entry) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO analyses (text, label, confidence, sentiment, polarity, subjectivity, mood, analyzed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, entry := range entries {
		_, err := stmt.Exec(
			entry.Text, entry.Label, entry.Confidence, entry.Sentiment,
			entry.Polarity, entry.Subjectivity, entry.Mood, entry.Timestamp,
		)
		if err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, tx.Commit()
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, text, label, confidence, sentiment, polarity, subjectivity, mood, analyzed_at
		 FROM analyses ORDER BY analyzed_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Text, &e.Label, &e.Confidence, &e.Sentiment,
			&e.Polarity, &e.Subjectivity, &e.Mood, &e.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Export writes every entry to w, oldest first, in the plain-text history
// format.
func (s *Store) Export(w io.Writer) error {
	rows, err := s.db.Query(
		`SELECT text, label, confidence, sentiment, polarity, mood, analyzed_at
		 FROM analyses ORDER BY analyzed_at ASC, id ASC`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Text, &e.Label, &e.Confidence, &e.Sentiment,
			&e.Polarity, &e.Mood, &e.Timestamp); err != nil {
			return err
		}
		if _, err := io.WriteString(w, FormatEntry(e)); err != nil {
			return err
		}
	}
	return rows.Err()
}

// FormatEntry renders one entry the way the interactive history shows it.
func FormatEntry(e Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s]\n", e.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Text: %s\n", e.Text)
	fmt.Fprintf(&sb, "Gender: %s (%.2f%%)\n", capitalize(e.Label), e.Confidence)
	fmt.Fprintf(&sb, "Sentiment: %s (Polarity: %.2f)\n", e.Sentiment, e.Polarity)
	fmt.Fprintf(&sb, "Mood: %s\n", e.Mood)
	sb.WriteString(strings.Repeat("-", 50) + "\n")
	return sb.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
