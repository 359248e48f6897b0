package screenings

import (
	"context"
	"sync"
)

// MemoryRepo keeps batches in process memory. Results live only as
// long as the server does, which is all the export and feedback
// endpoints need.
type MemoryRepo struct {
	mu      sync.RWMutex
	batches map[string]Batch
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{batches: make(map[string]Batch)}
}

func (r *MemoryRepo) Put(_ context.Context, b Batch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches[b.ID] = b
	return nil
}

func (r *MemoryRepo) Get(_ context.Context, id string) (Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.batches[id]
	if !ok {
		return Batch{}, ErrNotFound
	}
	return b, nil
}
