package structs

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "github.com/ERRORIK404/Keypad_Calculator/pkg/db_models"
)

func TestSafeSessionMapGetOrCreateOnce(t *testing.T) {
	m := NewSafeSessionMap[*int]()
	var created atomic.Int32

	var wg sync.WaitGroup
	results := make([]*int, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.GetOrCreate("alice", func() *int {
				created.Add(1)
				n := 42
				return &n
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
	got, ok := m.Read("alice")
	assert.True(t, ok)
	assert.Same(t, results[0], got)
}

func TestSafeSessionMapSeparatesLogins(t *testing.T) {
	m := NewSafeSessionMap[string]()

	_, ok := m.Read("bob")
	assert.False(t, ok)

	assert.Equal(t, "bob's", m.GetOrCreate("bob", func() string { return "bob's" }))
	assert.Equal(t, "carol's", m.GetOrCreate("carol", func() string { return "carol's" }))
	assert.Equal(t, "bob's", m.GetOrCreate("bob", func() string { return "other" }))
}

func TestNewHistoryItems(t *testing.T) {
	at := time.Date(2026, 10, 18, 14, 5, 9, 0, time.Local)
	items := NewHistoryItems([]models.HistoryEntry{
		{Expression: "5 + 3", Result: "8", CreatedAt: at},
	})
	require.Len(t, items, 1)
	assert.Equal(t, HistoryItem{Calculation: "5 + 3", Result: "8", Time: "2:05:09 PM"}, items[0])
	assert.Empty(t, NewHistoryItems(nil))
}
