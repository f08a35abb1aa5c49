package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

func (h *DB) Get(key string) (string, bool, error) {
	var value string
	err := h.DB.QueryRow(
		"SELECT value FROM blobs WHERE key = ?",
		key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get blob %q: %w", key, err)
	}
	return value, true, nil
}

func (h *DB) Set(key, value string) error {
	_, err := h.DB.Exec(
		`INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set blob %q: %w", key, err)
	}
	return nil
}

func (h *DB) Remove(key string) error {
	_, err := h.DB.Exec(
		"DELETE FROM blobs WHERE key = ?",
		key,
	)
	if err != nil {
		return fmt.Errorf("remove blob %q: %w", key, err)
	}
	return nil
}
