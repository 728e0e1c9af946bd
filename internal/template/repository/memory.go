package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/formaltex/formal/backend/api/internal/template"
)

// MemoryRepo is an in-memory repository used by handler and seeder tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*template.Template
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*template.Template)}
}

func (m *MemoryRepo) Insert(_ context.Context, t *template.Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *t
	m.store[t.ID] = &cp
	return nil
}

func (m *MemoryRepo) Get(_ context.Context, id string) (*template.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.store[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) List(_ context.Context, category string) ([]*template.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*template.Template{}
	for _, t := range m.store {
		if category != "" && t.Category != category {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryRepo) CountBuiltin(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, t := range m.store {
		if t.IsBuiltin {
			n++
		}
	}
	return n, nil
}
