package repository

import (
	"context"
	"errors"

	"github.com/formaltex/formal/backend/api/internal/document"
)

var ErrNotFound = errors.New("document not found")

// Repository defines persistence operations for documents. Two
// implementations exist: Mongo-backed for production and in-memory for
// tests.
type Repository interface {
	Insert(ctx context.Context, d *document.Document) error
	Get(ctx context.Context, id string) (*document.Document, error)
	// List returns documents sorted by created_at descending.
	List(ctx context.Context, skip, limit int64) ([]*document.Document, error)
	// Update applies the non-nil fields of upd plus a fresh updated_at,
	// returning ErrNotFound when no document matched.
	Update(ctx context.Context, id string, upd *document.UpdateRequest) error
	Delete(ctx context.Context, id string) error
}
