package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// memory keeps the json form of every entity so that callers never share
// maps or slices with the stored copy.
type memory[T any] struct {
	mu    sync.RWMutex
	items map[string][]byte
	order []string // newest last
}

// NewInMemory returns a Repository that keeps all entities in process memory.
func NewInMemory[T any]() Repository[T] {
	return &memory[T]{
		items: make(map[string][]byte),
	}
}

func (m *memory[T]) Add(_ context.Context, id string, t T) error {
	if id == "" {
		return ErrNoID
	}

	data, err := json.Marshal(t)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; ok {
		return ErrAlreadyExist
	}

	m.items[id] = data
	m.order = append(m.order, id)

	return nil
}

func (m *memory[T]) Get(_ context.Context, id string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.items[id]
	if !ok {
		return *new(T), ErrNotFound
	}

	return decode[T](data)
}

func (m *memory[T]) Save(_ context.Context, id string, t T) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}

	m.items[id] = data

	return nil
}

func (m *memory[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}

	delete(m.items, id)

	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	return nil
}

func (m *memory[T]) List(_ context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]T, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		t, err := decode[T](m.items[m.order[i]])
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}

	return result, nil
}

func decode[T any](data []byte) (T, error) {
	var t T
	err := json.Unmarshal(data, &t)
	return t, err
}
