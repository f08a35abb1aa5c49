package calculatorapplication

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	models "github.com/ERRORIK404/Keypad_Calculator/pkg/db_models"
	engine "github.com/ERRORIK404/Keypad_Calculator/pkg/expression_engine"
	"github.com/ERRORIK404/Keypad_Calculator/pkg/history"
	"github.com/ERRORIK404/Keypad_Calculator/pkg/keymap"
	locerr "github.com/ERRORIK404/Keypad_Calculator/pkg/local_errors"
)

// Calculator is one keypad session: the expression being entered and the
// history it feeds. Methods are safe for concurrent use.
type Calculator struct {
	mu      sync.Mutex
	state   engine.State
	history *history.Store
	log     *zap.Logger
}

func New(store *history.Store, log *zap.Logger) *Calculator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Calculator{
		state:   engine.New(),
		history: store,
		log:     log,
	}
}

// Open loads the history stored under key and returns a session over it.
// Unreadable history is logged and replaced by an empty list.
func Open(blobs history.BlobStore, key string, limit int, log *zap.Logger) *Calculator {
	c := New(history.New(blobs, key, history.WithLimit(limit)), log)
	if err := c.history.Load(); err != nil {
		c.log.Warn("history not loaded, starting empty", zap.String("key", key), zap.Error(err))
	}
	return c
}

// IsNotice reports whether err is a user-facing calculation notice rather
// than a fault.
func IsNotice(err error) bool {
	return errors.Is(err, locerr.ErrDivisionByZero) || errors.Is(err, locerr.ErrResultOutOfRange)
}

// Dispatch applies one key press and returns the display. A notice error
// such as division by zero comes back with the unchanged display.
func (c *Calculator) Dispatch(ev keymap.Event) (engine.Display, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		computed *engine.Computation
		err      error
	)
	switch ev.Kind {
	case keymap.Digit:
		c.state = c.state.AppendDigit(ev.Token)
	case keymap.Operator:
		op, ok := engine.ParseOperator(ev.Token)
		if !ok {
			return c.state.Display(), locerr.ErrUnknownOperation
		}
		c.state, computed, err = c.state.ChooseOperator(op)
	case keymap.Equals:
		c.state, computed, err = c.state.Compute()
	case keymap.Delete:
		c.state = c.state.DeleteLastChar()
	case keymap.Clear:
		c.state = c.state.Clear()
	case keymap.ClearHistory:
		err = c.clearHistory()
	default:
		return c.state.Display(), locerr.ErrUnknownKey
	}

	if computed != nil {
		c.record(computed)
	}
	if IsNotice(err) {
		noticesTotal.WithLabelValues(noticeReason(err)).Inc()
		c.log.Info("calculation rejected", zap.String("previous", c.state.Previous), zap.String("current", c.state.Current), zap.Error(err))
	}
	return c.state.Display(), err
}

// Replay loads the result of history entry index (0 is newest) as the
// current operand.
func (c *Calculator) Replay(index int) (engine.Display, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.history.Entry(index)
	if !ok {
		return c.state.Display(), locerr.ErrHistoryEntryNotFound
	}
	c.state = c.state.UseResult(entry.Result)
	return c.state.Display(), nil
}

func (c *Calculator) ClearHistory() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clearHistory()
}

func (c *Calculator) History() []models.HistoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Entries()
}

func (c *Calculator) Display() engine.Display {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Display()
}

// State returns a copy of the expression state.
func (c *Calculator) State() engine.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Calculator) record(computed *engine.Computation) {
	computationsTotal.WithLabelValues(computed.Operator.Name()).Inc()
	if _, err := c.history.Append(computed.Expression, computed.Result); err != nil {
		historyWriteFailures.Inc()
		c.log.Warn("history not persisted", zap.String("key", c.history.Key()), zap.Error(err))
	}
}

func (c *Calculator) clearHistory() error {
	if err := c.history.Clear(); err != nil {
		historyWriteFailures.Inc()
		c.log.Warn("history not removed", zap.String("key", c.history.Key()), zap.Error(err))
		return err
	}
	return nil
}

func noticeReason(err error) string {
	if errors.Is(err, locerr.ErrDivisionByZero) {
		return "division_by_zero"
	}
	return "out_of_range"
}
