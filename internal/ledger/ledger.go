// Package ledger provides SQLite-backed adoption history storage.
package ledger

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection for the adoption ledger.
type DB struct {
	conn *sqlx.DB
}

// Adoption is one completed adoption. AdopterID and AdopterName are
// empty for walk-in adoptions not tied to a registered adopter.
type Adoption struct {
	ID          int64  `db:"id"`
	CenterID    string `db:"center_id"`
	CenterName  string `db:"center_name"`
	AdopterID   string `db:"adopter_id"`
	AdopterName string `db:"adopter_name"`
	Species     string `db:"species"`
	AdoptedAt   int64  `db:"adopted_at"` // Unix seconds
}

// Time returns the adoption timestamp.
func (a Adoption) Time() time.Time {
	return time.Unix(a.AdoptedAt, 0)
}

// Open opens or creates a ledger database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate ledger: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS adoptions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		center_id TEXT NOT NULL,
		center_name TEXT NOT NULL,
		adopter_id TEXT NOT NULL DEFAULT '',
		adopter_name TEXT NOT NULL DEFAULT '',
		species TEXT NOT NULL,
		adopted_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_adoptions_center ON adoptions(center_id);
	CREATE INDEX IF NOT EXISTS idx_adoptions_species ON adoptions(species);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Record appends one adoption to the ledger. A zero AdoptedAt is filled
// with the current time.
func (db *DB) Record(a Adoption) error {
	if a.AdoptedAt == 0 {
		a.AdoptedAt = time.Now().Unix()
	}

	_, err := db.conn.Exec(
		`INSERT INTO adoptions (center_id, center_name, adopter_id, adopter_name, species, adopted_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.CenterID, a.CenterName, a.AdopterID, a.AdopterName, a.Species, a.AdoptedAt,
	)
	if err != nil {
		return fmt.Errorf("record adoption: %w", err)
	}
	return nil
}

// Recent returns the newest adoptions, most recent first, up to limit.
func (db *DB) Recent(limit int) ([]Adoption, error) {
	if limit < 0 {
		return nil, fmt.Errorf("limit must not be negative: %d", limit)
	}

	var rows []Adoption
	err := db.conn.Select(&rows,
		`SELECT id, center_id, center_name, adopter_id, adopter_name, species, adopted_at
		 FROM adoptions ORDER BY adopted_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("load adoptions: %w", err)
	}
	return rows, nil
}

// CountBySpecies aggregates adoptions per species over the whole ledger.
func (db *DB) CountBySpecies() (map[string]int, error) {
	var rows []struct {
		Species string `db:"species"`
		Count   int    `db:"count"`
	}
	err := db.conn.Select(&rows,
		`SELECT species, COUNT(*) AS count FROM adoptions GROUP BY species`)
	if err != nil {
		return nil, fmt.Errorf("count adoptions: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Species] = r.Count
	}
	return counts, nil
}
