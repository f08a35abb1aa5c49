package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	structs "github.com/ERRORIK404/Keypad_Calculator/pkg/structs"
)

func TestDisplayStruct(t *testing.T) {
	d := structs.Display{Preview: "1,200 ×", Current: "3"}
	s, err := DisplayToStruct(d)
	require.NoError(t, err)
	assert.Equal(t, d, DisplayFromStruct(s))

	assert.Equal(t, structs.Display{}, DisplayFromStruct(nil))
}

func TestHistoryList(t *testing.T) {
	items := []structs.HistoryItem{
		{Calculation: "8 × 2", Result: "16", Time: "9:30:02 AM"},
		{Calculation: "5 + 3", Result: "8", Time: "9:30:01 AM"},
	}
	l, err := HistoryToList(items)
	require.NoError(t, err)
	assert.Equal(t, items, HistoryFromList(l))

	assert.Empty(t, HistoryFromList(nil))
}
