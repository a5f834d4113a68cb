// Package console provides the diagnostic sink the registry reports to.
//
// The registry only needs Sink.Error. Console adds the post/warning levels,
// structured logging through slog, a message History and listeners, so a
// host application can show diagnostics the way an editor console would.
package console

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sink receives human-readable diagnostics.
// Implementations must be safe for concurrent use.
type Sink interface {
	Error(message string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(message string)

// Error calls f(message).
func (f SinkFunc) Error(message string) { f(message) }

// Discard is a Sink that drops every message.
var Discard Sink = SinkFunc(func(string) {})

// Level is the severity of a console message.
type Level int

const (
	// LevelPost is a plain informational message.
	LevelPost Level = iota
	// LevelWarning flags something suspicious that did not fail.
	LevelWarning
	// LevelError reports a rejected or failed operation.
	LevelError
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelPost:
		return "post"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Message is one console entry.
type Message struct {
	ID    string
	Level Level
	Text  string
	Time  time.Time
}

// Listener is notified of every message after it is recorded.
type Listener func(Message)

// Console is a Sink with history and listeners.
type Console struct {
	logger  *slog.Logger
	history History

	mu        sync.RWMutex
	listeners map[int]Listener
	nextID    int
}

// Option configures a Console.
type Option func(*Console)

// WithLogger sets the logger messages are written to.
// Default: slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHistory sets the store messages are appended to.
// Default: a MemoryHistory holding DefaultHistorySize messages.
func WithHistory(h History) Option {
	return func(c *Console) {
		if h != nil {
			c.history = h
		}
	}
}

// New creates a Console.
func New(opts ...Option) *Console {
	c := &Console{
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.history == nil {
		c.history = NewMemoryHistory(DefaultHistorySize)
	}
	return c
}

// Post records an informational message.
func (c *Console) Post(text string) { c.emit(LevelPost, text) }

// Warning records a warning.
func (c *Console) Warning(text string) { c.emit(LevelWarning, text) }

// Error records an error. It implements Sink.
func (c *Console) Error(text string) { c.emit(LevelError, text) }

// History returns the store backing the console.
func (c *Console) History() History { return c.history }

// AddListener registers fn and returns a function that removes it.
func (c *Console) AddListener(fn Listener) (remove func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Console) emit(level Level, text string) {
	msg := Message{
		ID:    uuid.NewString(),
		Level: level,
		Text:  text,
		Time:  time.Now().UTC(),
	}

	c.logger.Log(context.Background(), level.slogLevel(), text,
		slog.String("console_id", msg.ID),
		slog.String("console_level", level.String()),
	)

	if err := c.history.Append(msg); err != nil {
		c.logger.Warn("console history append failed",
			slog.String("console_id", msg.ID),
			slog.String("error", err.Error()),
		)
	}

	c.mu.RLock()
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.RUnlock()

	for _, l := range listeners {
		l(msg)
	}
}
