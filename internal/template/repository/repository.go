package repository

import (
	"context"
	"errors"

	"github.com/formaltex/formal/backend/api/internal/template"
)

var ErrNotFound = errors.New("template not found")

// Repository defines persistence operations for templates. Templates are
// immutable after insertion.
type Repository interface {
	Insert(ctx context.Context, t *template.Template) error
	Get(ctx context.Context, id string) (*template.Template, error)
	// List returns templates sorted by name ascending, optionally filtered
	// by exact category match when category is non-empty.
	List(ctx context.Context, category string) ([]*template.Template, error)
	// CountBuiltin reports how many builtin-flagged templates exist.
	CountBuiltin(ctx context.Context) (int64, error)
}
