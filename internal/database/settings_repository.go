package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SettingsRepository handles database operations for free-form settings
type SettingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository creates a new repository instance
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the value for key; ok is false when the key is unset.
func (r *SettingsRepository) Get(key string) (value string, ok bool, err error) {
	err = r.db.Get(&value, "SELECT value FROM settings WHERE key = $1", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get setting %q: %v", key, err)
	}
	return value, true, nil
}

// Put inserts or replaces the value for key.
func (r *SettingsRepository) Put(key, value string) error {
	query := `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`
	if _, err := r.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to put setting %q: %v", key, err)
	}
	return nil
}

// Timestamp returns the stored timestamp for key, or nil when unset.
func (r *SettingsRepository) Timestamp(key string) (*time.Time, error) {
	value, ok, err := r.Get(key)
	if err != nil || !ok {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse setting %q: %v", key, err)
	}
	return &t, nil
}

// SetTimestamp stores a timestamp under key.
func (r *SettingsRepository) SetTimestamp(key string, t time.Time) error {
	return r.Put(key, t.Format(time.RFC3339Nano))
}
