package repositories

import (
	"context"
	"sync"

	"github.com/poofware/employee-service/internal/utils"
)

/* ------------------------------------------------------------------
   Generic in-memory store
------------------------------------------------------------------ */

// MemoryStore keeps entities in insertion order behind a mutex. IDs
// start at 1 and only ever move forward, so an ID is never reused even
// if the slot it named goes away. Every entity that crosses the store
// boundary is cloned; callers never share memory with the store.
type MemoryStore[T Entity[T]] struct {
	mu       sync.Mutex
	entities []T
	nextID   int
}

func NewMemoryStore[T Entity[T]]() *MemoryStore[T] {
	return &MemoryStore[T]{nextID: 1}
}

func (s *MemoryStore[T]) Create(ctx context.Context, entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := entity.Clone()
	stored.SetID(s.nextID)
	s.nextID++
	s.entities = append(s.entities, stored)

	return stored.Clone(), nil
}

func (s *MemoryStore[T]) GetAll(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, 0, len(s.entities))
	for _, e := range s.entities {
		out = append(out, e.Clone())
	}
	return out, nil
}

func (s *MemoryStore[T]) GetByID(ctx context.Context, id int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entities {
		if e.GetID() == id {
			return e.Clone(), nil
		}
	}
	var zero T
	return zero, nil
}

func (s *MemoryStore[T]) Update(ctx context.Context, entity T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entities {
		if e.GetID() == entity.GetID() {
			s.entities[i] = entity.Clone()
			return nil
		}
	}
	return utils.ErrNoRowsUpdated
}
