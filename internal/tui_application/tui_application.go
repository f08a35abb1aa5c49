// Package tuiapplication is the terminal keypad: a bubbletea program over a
// calculator session with the history panel beside the display.
package tuiapplication

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	calc "github.com/ERRORIK404/Keypad_Calculator/internal/calculator_application"
	models "github.com/ERRORIK404/Keypad_Calculator/pkg/db_models"
	engine "github.com/ERRORIK404/Keypad_Calculator/pkg/expression_engine"
	"github.com/ERRORIK404/Keypad_Calculator/pkg/keymap"
	structs "github.com/ERRORIK404/Keypad_Calculator/pkg/structs"
)

const historyRows = 10

var (
	screenStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(28).Align(lipgloss.Right)
	previewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	currentStyle = lipgloss.NewStyle().Bold(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(36)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("218"))
	helpStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
)

// Model is the keypad UI state.
type Model struct {
	calc    *calc.Calculator
	display engine.Display
	history []models.HistoryEntry
	cursor  int
	notice  string
}

func New(c *calc.Calculator) Model {
	return Model{
		calc:    c,
		display: c.Display(),
		history: c.History(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.notice = ""

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < min(len(m.history), historyRows)-1 {
			m.cursor++
		}
		return m, nil
	case "ctrl+r":
		d, err := m.calc.Replay(m.cursor)
		m.apply(d, err)
		return m, nil
	}

	ev, err := keymap.FromKey(key.String())
	if err != nil {
		// клавиши без назначения игнорируются
		return m, nil
	}
	d, err := m.calc.Dispatch(ev)
	m.apply(d, err)
	return m, nil
}

func (m *Model) apply(d engine.Display, err error) {
	m.display = d
	if err != nil {
		m.notice = err.Error()
	}
	m.history = m.calc.History()
	if m.cursor >= len(m.history) {
		m.cursor = max(len(m.history)-1, 0)
	}
}

func (m Model) View() string {
	screen := previewStyle.Render(m.display.Preview) + "\n" + currentStyle.Render(m.display.Current)
	left := screenStyle.Render(screen)
	if m.notice != "" {
		left += "\n" + noticeStyle.Render(m.notice)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", panelStyle.Render(m.historyView()))
	help := helpStyle.Render("0-9 . + - * / %  enter =  backspace  esc clear  ↑/↓ ctrl+r replay  ctrl+l clear history  ctrl+c quit")
	return body + "\n" + help + "\n"
}

func (m Model) historyView() string {
	if len(m.history) == 0 {
		return "No calculations yet"
	}

	var b strings.Builder
	b.WriteString("History\n")
	for i, entry := range m.history {
		if i == historyRows {
			fmt.Fprintf(&b, "… %d more", len(m.history)-historyRows)
			break
		}
		item := structs.NewHistoryItem(entry)
		line := fmt.Sprintf("%s = %s  %s", item.Calculation, item.Result, item.Time)
		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Run shows the keypad until the user quits.
func Run(c *calc.Calculator) error {
	if _, err := tea.NewProgram(New(c), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("keypad: %w", err)
	}
	return nil
}
