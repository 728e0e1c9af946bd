package repository

import (
	"context"

	"github.com/formaltex/formal/backend/api/internal/chat"
)

// Repository defines persistence for chat messages. Messages are append
// only in this version.
type Repository interface {
	Insert(ctx context.Context, m *chat.Message) error
}
