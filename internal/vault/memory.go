package vault

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MemoryStore is a Store kept in memory. Documents are listed in the order
// they were first added.
type MemoryStore struct {
	mu   sync.Mutex
	ids  []string
	docs map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]string)}
}

// Put adds or replaces a document.
func (m *MemoryStore) Put(id, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		m.ids = append(m.ids, id)
	}
	m.docs[id] = text
}

// List implements Store.
func (m *MemoryStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.ids...), nil
}

// Metadata implements Store.
func (m *MemoryStore) Metadata(ctx context.Context, id string) (map[string]any, error) {
	text, err := m.ReadText(ctx, id)
	if err != nil {
		return nil, err
	}
	meta, err := ReadFrontMatter(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return meta, nil
}

// ReadText implements Store.
func (m *MemoryStore) ReadText(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	text, ok := m.docs[id]
	if !ok {
		return "", fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return text, nil
}

// Commit implements Store. The whole read-modify-write runs under the
// store lock.
func (m *MemoryStore) Commit(ctx context.Context, id string, mutate Mutator) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	text, ok := m.docs[id]
	if !ok {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	next, err := mutate(text)
	if err != nil {
		return err
	}
	m.docs[id] = next
	return nil
}
