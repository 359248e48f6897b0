package profiles

import (
	"context"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	current Profile
	set     bool
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Get(_ context.Context) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.set {
		return Profile{}, ErrNotFound
	}
	return cloneProfile(r.current), nil
}

func (r *MemoryRepo) Put(_ context.Context, p Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.UpdatedAt = time.Now().UTC()
	r.current = cloneProfile(p)
	r.set = true
	return nil
}

func cloneProfile(p Profile) Profile {
	out := p
	out.MustHave = append([]string(nil), p.MustHave...)
	out.GoodToHave = append([]string(nil), p.GoodToHave...)
	return out
}
