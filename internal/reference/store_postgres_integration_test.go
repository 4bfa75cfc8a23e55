// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package reference_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kahasolusi/internal/platform/apperr"
	"github.com/taibuivan/kahasolusi/internal/platform/testutil"
	"github.com/taibuivan/kahasolusi/internal/reference"
	"github.com/taibuivan/kahasolusi/pkg/pointer"
)

/*
TestPostgresRepository exercises category storage against a real PostgreSQL.
*/
func TestPostgresRepository(t *testing.T) {
	pool := testutil.StartPostgres(t)
	repo := reference.NewPostgresRepository(pool, reference.KindCategory)
	ctx := context.Background()

	reset := func(t *testing.T) {
		testutil.Exec(t, pool, `TRUNCATE portfolio, category RESTART IDENTITY CASCADE`)
	}

	t.Run("create_defaults_active", func(t *testing.T) {
		reset(t)

		created, err := repo.Create(ctx, &reference.Payload{Name: "GovTech", Slug: "govtech", SortOrder: 2})
		require.NoError(t, err)
		assert.True(t, created.Active)
		assert.Zero(t, created.PortfolioCount)

		hidden, err := repo.Create(ctx, &reference.Payload{Name: "Archive", Slug: "archive", Active: pointer.To(false)})
		require.NoError(t, err)
		assert.False(t, hidden.Active)

		active, err := repo.List(ctx, false)
		require.NoError(t, err)
		assert.Len(t, active, 1)

		all, err := repo.List(ctx, true)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "archive", all[0].Slug, "sort_order 0 precedes 2")
	})

	t.Run("duplicate_slug_conflicts", func(t *testing.T) {
		reset(t)

		_, err := repo.Create(ctx, &reference.Payload{Name: "GovTech", Slug: "govtech"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, &reference.Payload{Name: "Gov Tech", Slug: "govtech"})
		assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
	})

	t.Run("update_keeps_active_when_omitted", func(t *testing.T) {
		reset(t)

		created, err := repo.Create(ctx, &reference.Payload{Name: "GovTech", Slug: "govtech"})
		require.NoError(t, err)

		toggled, err := repo.ToggleActive(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, toggled.Active)

		updated, err := repo.Update(ctx, created.ID, &reference.Payload{Name: "Government", Slug: "government"})
		require.NoError(t, err)
		assert.False(t, updated.Active)
		assert.Equal(t, "Government", updated.Name)

		_, err = repo.Update(ctx, 999, &reference.Payload{Name: "x", Slug: "x"})
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})

	t.Run("delete_cascades_links", func(t *testing.T) {
		reset(t)

		created, err := repo.Create(ctx, &reference.Payload{Name: "GovTech", Slug: "govtech"})
		require.NoError(t, err)

		testutil.Exec(t, pool, `INSERT INTO portfolio (id, name, description) OVERRIDING SYSTEM VALUE VALUES (1, 'Village Portal', 'desc')`)
		testutil.Exec(t, pool, `INSERT INTO portfolio_category (portfolio_id, category_id) VALUES (1, $1)`, created.ID)

		found, err := repo.FindBySlug(ctx, "govtech")
		require.NoError(t, err)
		assert.Equal(t, 1, found.PortfolioCount)

		require.NoError(t, repo.Delete(ctx, created.ID))

		var links int
		require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM portfolio_category`).Scan(&links))
		assert.Zero(t, links)

		assert.True(t, apperr.HasCode(repo.Delete(ctx, created.ID), apperr.CodeNotFound))
	})
}
