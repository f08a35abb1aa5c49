// Package history keeps the bounded, newest-first list of finished
// calculations and persists it as a single JSON blob.
package history

import (
	"encoding/json"
	"fmt"
	"time"

	models "github.com/ERRORIK404/Keypad_Calculator/pkg/db_models"
	locerr "github.com/ERRORIK404/Keypad_Calculator/pkg/local_errors"
)

const (
	// DefaultKey is the blob key the history list is stored under.
	DefaultKey = "calculatorHistory"
	// DefaultLimit is how many entries are kept.
	DefaultLimit = 50
)

// BlobStore is an opaque key-value store for serialized blobs.
type BlobStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Store is the history list. It is not safe for concurrent use; callers
// serialise access.
type Store struct {
	blobs   BlobStore
	key     string
	limit   int
	now     func() time.Time
	entries []models.HistoryEntry
}

type Option func(*Store)

// WithLimit caps the list at n entries. Values below 1 are ignored.
func WithLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithClock replaces time.Now for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates an empty store. Call Load to read persisted entries.
func New(blobs BlobStore, key string, opts ...Option) *Store {
	if key == "" {
		key = DefaultKey
	}
	s := &Store{
		blobs: blobs,
		key:   key,
		limit: DefaultLimit,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the blob key.
func (s *Store) Key() string {
	return s.key
}

// Load replaces the in-memory list with the persisted one. A missing blob is
// an empty history. On a read failure or a blob that does not decode the
// list is left empty and the error is returned for the caller to log.
func (s *Store) Load() error {
	s.entries = nil

	raw, ok, err := s.blobs.Get(s.key)
	if err != nil {
		return fmt.Errorf("read history %q: %w", s.key, err)
	}
	if !ok || raw == "" {
		return nil
	}

	var entries []models.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return fmt.Errorf("%w: %q: %v", locerr.ErrCorruptHistory, s.key, err)
	}
	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}
	s.entries = entries
	return nil
}

// Append records a calculation as the newest entry, evicts anything past the
// limit and persists the list. The in-memory list is updated even when the
// write fails.
func (s *Store) Append(expression, result string) (models.HistoryEntry, error) {
	entry := models.HistoryEntry{
		Expression: expression,
		Result:     result,
		CreatedAt:  s.now(),
	}

	entries := make([]models.HistoryEntry, 0, min(len(s.entries)+1, s.limit))
	entries = append(entries, entry)
	entries = append(entries, s.entries...)
	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}
	s.entries = entries

	return entry, s.persist()
}

// Clear empties the list and removes the blob.
func (s *Store) Clear() error {
	s.entries = nil
	if err := s.blobs.Remove(s.key); err != nil {
		return fmt.Errorf("remove history %q: %w", s.key, err)
	}
	return nil
}

// Entries returns a copy of the list, newest first.
func (s *Store) Entries() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Entry returns the i-th newest entry.
func (s *Store) Entry(i int) (models.HistoryEntry, bool) {
	if i < 0 || i >= len(s.entries) {
		return models.HistoryEntry{}, false
	}
	return s.entries[i], true
}

func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.blobs.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("write history %q: %w", s.key, err)
	}
	return nil
}
