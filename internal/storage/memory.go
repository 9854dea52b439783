package storage

import (
	"context"
	"sync"
)

// Memory holds the document in process memory. Used by tests and as an
// ephemeral engine; the document does not survive a restart.
type Memory struct {
	mu   sync.Mutex
	data []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		return nil, ErrNotFound
	}

	data := make([]byte, len(m.data))
	copy(data, m.data)
	return data, nil
}

func (m *Memory) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make([]byte, len(data))
	copy(m.data, data)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
