package template

import (
	"context"

	"github.com/formaltex/formal/backend/api/pkg/logger"
)

// SeedStore is the slice of the template repository the seeder needs.
type SeedStore interface {
	Insert(ctx context.Context, t *Template) error
	CountBuiltin(ctx context.Context) (int64, error)
}

// Seed inserts the built-in templates unless any builtin-flagged template
// already exists. It never updates existing records, so editing the
// builtin definitions has no effect on an already-seeded database. Inserts
// are independent: one failure is logged and the rest still run.
func Seed(ctx context.Context, store SeedStore) error {
	count, err := store.CountBuiltin(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Infof("found %d existing built-in templates, skipping seed", count)
		return nil
	}
	for _, t := range Builtins() {
		if err := store.Insert(ctx, t); err != nil {
			logger.Errorf("failed to insert template %s: %v", t.Name, err)
			continue
		}
		logger.Infof("inserted template: %s", t.Name)
	}
	logger.Info("built-in templates initialization completed")
	return nil
}
