package structs

import (
	"sync"

	models "github.com/ERRORIK404/Keypad_Calculator/pkg/db_models"
)

// Экран калькулятора, который отдается клиентам
type Display struct {
	Preview string `json:"preview"`
	Current string `json:"current"`
	Notice  string `json:"notice,omitempty"`
}

// Запись истории в том виде, в котором ее видит пользователь
type HistoryItem struct {
	Calculation string `json:"calculation"`
	Result      string `json:"result"`
	Time        string `json:"time"`
}

// TimeLayout is how history timestamps are shown.
const TimeLayout = models.ClockLayout

func NewHistoryItem(entry models.HistoryEntry) HistoryItem {
	return HistoryItem{
		Calculation: entry.Expression,
		Result:      entry.Result,
		Time:        entry.CreatedAt.Local().Format(TimeLayout),
	}
}

func NewHistoryItems(entries []models.HistoryEntry) []HistoryItem {
	items := make([]HistoryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, NewHistoryItem(entry))
	}
	return items
}

// Сессии калькулятора по логину, безопасно для конкурентного чтения и записи
type SafeSessionMap[T any] struct {
	sessions map[string]T
	mu       sync.RWMutex
}

func NewSafeSessionMap[T any]() *SafeSessionMap[T] {
	return &SafeSessionMap[T]{sessions: make(map[string]T)}
}

func (m *SafeSessionMap[T]) Read(login string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[login]
	return session, ok
}

// GetOrCreate returns the session for login, building it with create on
// first use. create runs under the write lock, so it happens once per login.
func (m *SafeSessionMap[T]) GetOrCreate(login string, create func() T) T {
	if session, ok := m.Read(login); ok {
		return session
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.sessions[login]; ok {
		return session
	}
	session := create()
	m.sessions[login] = session
	return session
}
