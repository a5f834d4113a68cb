package console

import "sync"

// MemoryHistory keeps messages in a bounded in-process ring.
// When full, the oldest message is dropped.
type MemoryHistory struct {
	mu       sync.RWMutex
	buf      []Message
	start    int
	size     int
	capacity int
	closed   bool
}

// Compile-time interface check.
var _ History = (*MemoryHistory)(nil)

// NewMemoryHistory creates a history holding at most capacity messages.
// A capacity <= 0 means unbounded.
func NewMemoryHistory(capacity int) *MemoryHistory {
	return &MemoryHistory{capacity: capacity}
}

// Append implements History.
func (m *MemoryHistory) Append(msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrHistoryClosed
	}

	if m.capacity <= 0 {
		m.buf = append(m.buf, msg)
		m.size++
		return nil
	}

	if m.buf == nil {
		m.buf = make([]Message, m.capacity)
	}
	if m.size < m.capacity {
		m.buf[(m.start+m.size)%m.capacity] = msg
		m.size++
		return nil
	}
	// Full: overwrite the oldest entry.
	m.buf[m.start] = msg
	m.start = (m.start + 1) % m.capacity
	return nil
}

// List implements History.
func (m *MemoryHistory) List(limit int) ([]Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrHistoryClosed
	}

	n := m.size
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Message, 0, n)
	for i := m.size - n; i < m.size; i++ {
		out = append(out, m.at(i))
	}
	return out, nil
}

// Count implements History.
func (m *MemoryHistory) Count() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return 0, ErrHistoryClosed
	}
	return m.size, nil
}

// Clear implements History.
func (m *MemoryHistory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrHistoryClosed
	}
	m.buf = nil
	m.start = 0
	m.size = 0
	return nil
}

// Close implements History.
func (m *MemoryHistory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.buf = nil
	m.size = 0
	return nil
}

// at returns the i-th oldest message. Caller holds the lock.
func (m *MemoryHistory) at(i int) Message {
	if m.capacity <= 0 {
		return m.buf[i]
	}
	return m.buf[(m.start+i)%m.capacity]
}
