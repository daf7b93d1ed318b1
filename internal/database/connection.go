package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Connect opens a database connection for the given driver.
//
// driver is either "sqlite3" or "postgres". For sqlite3 the dsn is a file
// path whose parent directory is created if missing; for postgres it is a
// connection URL. The schema is initialized on every connect.
func Connect(driver, dsn string) (*sqlx.DB, error) {
	if driver == "sqlite3" && dsn != ":memory:" {
		if dir := filepath.Dir(dsn); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %v", err)
			}
		}
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if driver == "sqlite3" {
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %v", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := initializeSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// initializeSchema creates the four collections if they don't exist.
func initializeSchema(db *sqlx.DB) error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if db.DriverName() == "postgres" {
		idColumn = "BIGSERIAL PRIMARY KEY"
	}

	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS questions (
				id %s,
				text TEXT NOT NULL,
				option_a TEXT NOT NULL,
				option_b TEXT NOT NULL,
				option_c TEXT NOT NULL,
				option_d TEXT NOT NULL,
				correct_option TEXT NOT NULL,
				explanation TEXT NOT NULL DEFAULT '',
				category TEXT NOT NULL DEFAULT 'general',
				created_at TIMESTAMP NOT NULL,
				last_asked TIMESTAMP
			)
		`, idColumn),
		`
			CREATE TABLE IF NOT EXISTS performance (
				question_id INTEGER PRIMARY KEY,
				times_asked INTEGER NOT NULL DEFAULT 0,
				times_correct INTEGER NOT NULL DEFAULT 0,
				last_attempt TIMESTAMP,
				FOREIGN KEY (question_id) REFERENCES questions(id)
			)
		`,
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS quiz_results (
				id %s,
				completed_at TIMESTAMP NOT NULL,
				score INTEGER NOT NULL,
				total INTEGER NOT NULL,
				percentage INTEGER NOT NULL,
				duration_seconds INTEGER NOT NULL,
				category TEXT NOT NULL DEFAULT 'general'
			)
		`, idColumn),
		`
			CREATE TABLE IF NOT EXISTS settings (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL
			)
		`,
		`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category)`,
		`CREATE INDEX IF NOT EXISTS idx_quiz_results_completed ON quiz_results(completed_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}
	return nil
}
