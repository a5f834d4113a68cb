package console

import "errors"

// DefaultHistorySize is the capacity of the history New creates by default.
const DefaultHistorySize = 1024

// History stores console messages.
// Implementations must be safe for concurrent use.
type History interface {
	// Append stores a message.
	Append(msg Message) error

	// List returns the most recent limit messages, oldest first.
	// A limit <= 0 returns every stored message.
	List(limit int) ([]Message, error)

	// Count returns the number of stored messages.
	Count() (int, error)

	// Clear removes every stored message.
	Clear() error

	// Close releases any resources. Further calls return ErrHistoryClosed.
	Close() error
}

// ErrHistoryClosed indicates the history has been closed.
var ErrHistoryClosed = errors.New("console history closed")
