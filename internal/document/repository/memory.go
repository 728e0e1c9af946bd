package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/formaltex/formal/backend/api/internal/document"
)

// MemoryRepo is an in-memory repository used by the handler tests. It
// mirrors the Mongo repo's sorting, pagination and partial-update
// behavior.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*document.Document
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*document.Document)}
}

func (m *MemoryRepo) Insert(_ context.Context, d *document.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *d
	m.store[d.ID] = &cp
	return nil
}

func (m *MemoryRepo) Get(_ context.Context, id string) (*document.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.store[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) List(_ context.Context, skip, limit int64) ([]*document.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make([]*document.Document, 0, len(m.store))
	for _, d := range m.store {
		cp := *d
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if skip >= int64(len(all)) {
		return []*document.Document{}, nil
	}
	all = all[skip:]
	if limit < int64(len(all)) {
		all = all[:limit]
	}
	return all, nil
}

func (m *MemoryRepo) Update(_ context.Context, id string, upd *document.UpdateRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	if upd.Title != nil {
		d.Title = *upd.Title
	}
	if upd.Content != nil {
		d.Content = *upd.Content
	}
	if upd.Tags != nil {
		d.Tags = *upd.Tags
	}
	if upd.Metadata != nil {
		d.Metadata = *upd.Metadata
	}
	d.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MemoryRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}
