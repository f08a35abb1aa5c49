package db_models

import (
	"encoding/json"
	"time"
)

// ClockLayout is the time-of-day form older history blobs carry.
const ClockLayout = "3:04:05 PM"

// HistoryEntry is one finished calculation as persisted in the history blob.
type HistoryEntry struct {
	Expression string    `json:"calculation"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"timestamp"`
}

// UnmarshalJSON accepts RFC 3339 timestamps and the "9:30:01 AM" form,
// which is placed on today's date. Any other timestamp is left zero.
func (e *HistoryEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Expression string `json:"calculation"`
		Result     string `json:"result"`
		Timestamp  string `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = HistoryEntry{Expression: raw.Expression, Result: raw.Result}
	if t, err := time.Parse(time.RFC3339Nano, raw.Timestamp); err == nil {
		e.CreatedAt = t
	} else if clock, err := time.Parse(ClockLayout, raw.Timestamp); err == nil {
		y, m, d := time.Now().Date()
		e.CreatedAt = time.Date(y, m, d, clock.Hour(), clock.Minute(), clock.Second(), 0, time.Local)
	}
	return nil
}
