package repository

import (
	"context"
	"sync"

	"github.com/formaltex/formal/backend/api/internal/chat"
)

// MemoryRepo collects inserted messages for test inspection.
type MemoryRepo struct {
	mu       sync.Mutex
	Messages []*chat.Message
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Insert(_ context.Context, msg *chat.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *msg
	m.Messages = append(m.Messages, &cp)
	return nil
}
