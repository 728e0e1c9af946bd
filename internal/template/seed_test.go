package template_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/formaltex/formal/backend/api/internal/template"
	"github.com/formaltex/formal/backend/api/internal/template/repository"
)

func TestSeed_InsertsFiveBuiltins(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()

	require.NoError(t, template.Seed(ctx, repo))

	n, err := repo.CountBuiltin(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, n)

	// category split: academic x2, business x2, presentation x1
	academic, err := repo.List(ctx, "academic")
	require.NoError(t, err)
	require.Len(t, academic, 2)
	business, err := repo.List(ctx, "business")
	require.NoError(t, err)
	require.Len(t, business, 2)
	presentation, err := repo.List(ctx, "presentation")
	require.NoError(t, err)
	require.Len(t, presentation, 1)
}

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()

	require.NoError(t, template.Seed(ctx, repo))
	require.NoError(t, template.Seed(ctx, repo))

	n, err := repo.CountBuiltin(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, n)
}

func TestSeed_SkipsWhenAnyBuiltinExists(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()

	// a single pre-existing builtin suppresses the whole seed set
	require.NoError(t, repo.Insert(ctx, &template.Template{
		ID:        "template_custom",
		Name:      "Custom",
		Category:  "personal",
		IsBuiltin: true,
	}))

	require.NoError(t, template.Seed(ctx, repo))
	n, err := repo.CountBuiltin(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestBuiltins_StableIDsAndContent(t *testing.T) {
	ts := template.Builtins()
	require.Len(t, ts, 5)
	require.Equal(t, "template_article", ts[0].ID)
	require.Equal(t, "template_letter", ts[4].ID)
	for _, tpl := range ts {
		require.True(t, tpl.IsBuiltin)
		require.Contains(t, tpl.Content, `\documentclass`)
		require.Contains(t, tpl.Content, `\end{document}`)
	}
}
