package index

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/koelner/internal/cologne"
)

// DB is a phonetic index database. It is safe to keep open across many
// operations; Close releases the underlying connection.
type DB struct {
	db *sql.DB
}

// Entry is one indexed word together with its phonetic code.
type Entry struct {
	Word string
	Code string
}

// Open opens (or creates) the index database at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &DB{db: db}, nil
}

// createTables creates the index schema if it does not exist yet.
func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS words (
			id integer PRIMARY KEY AUTOINCREMENT,
			word text NOT NULL UNIQUE,
			code text NOT NULL,
			packed blob NOT NULL,
			added integer NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_words_code ON words(code)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Add encodes a word and stores it in the index. Re-adding a word
// refreshes its code.
func (d *DB) Add(word string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return fmt.Errorf("cannot index an empty word")
	}

	vec := cologne.NewPackedVec()
	vec.ReadFrom([]byte(word))
	packed, _ := vec.IntoRaw()

	_, err := d.db.Exec(
		`INSERT INTO words (word, code, packed, added) VALUES (?, ?, ?, ?)
		 ON CONFLICT(word) DO UPDATE SET code = excluded.code, packed = excluded.packed`,
		word, cologne.EncodeString([]byte(word)), packed, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to index word %q: %w", word, err)
	}
	return nil
}

// AddAll indexes a batch of words inside a single transaction and
// returns the number of words stored.
func (d *DB) AddAll(words []string) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO words (word, code, packed, added) VALUES (?, ?, ?, ?)
		 ON CONFLICT(word) DO UPDATE SET code = excluded.code, packed = excluded.packed`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	now := time.Now().Unix()
	vec := cologne.NewPackedVec()
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		vec.ReadFrom([]byte(word))
		packed, _ := vec.IntoRaw()
		if _, err := stmt.Exec(word, cologne.EncodeString([]byte(word)), packed, now); err != nil {
			return added, fmt.Errorf("failed to index word %q: %w", word, err)
		}
		added++
	}

	if err := tx.Commit(); err != nil {
		return added, fmt.Errorf("failed to commit: %w", err)
	}
	return added, nil
}

// Lookup encodes the query word and returns every indexed word that
// shares its code, i.e. everything that sounds like it.
func (d *DB) Lookup(query string) ([]Entry, error) {
	code := cologne.EncodeString([]byte(query))

	rows, err := d.db.Query(`SELECT word, code FROM words WHERE code = ? ORDER BY word`, code)
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}
	defer rows.Close()

	var matches []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Word, &e.Code); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		matches = append(matches, e)
	}
	return matches, rows.Err()
}

// Words returns all indexed entries ordered by word.
func (d *DB) Words() ([]Entry, error) {
	rows, err := d.db.Query(`SELECT word, code FROM words ORDER BY word`)
	if err != nil {
		return nil, fmt.Errorf("failed to list index: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Word, &e.Code); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of indexed words.
func (d *DB) Count() (int, error) {
	var n int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return n, nil
}

// Remove deletes a word from the index.
func (d *DB) Remove(word string) error {
	res, err := d.db.Exec(`DELETE FROM words WHERE word = ?`, strings.TrimSpace(word))
	if err != nil {
		return fmt.Errorf("failed to remove word %q: %w", word, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("word %q is not indexed", word)
	}
	return nil
}
