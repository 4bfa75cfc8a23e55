// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package portfolio_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kahasolusi/internal/platform/apperr"
	"github.com/taibuivan/kahasolusi/internal/platform/testutil"
	"github.com/taibuivan/kahasolusi/internal/portfolio"
)

// seed resets the schema and inserts reference rows with fixed ids:
// categories 1..3, technologies 5..6, client 9.
func seed(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	testutil.Exec(t, pool, `TRUNCATE portfolio, category, technology, client RESTART IDENTITY CASCADE`)
	testutil.Exec(t, pool, `
		INSERT INTO category (id, name, slug, sort_order) OVERRIDING SYSTEM VALUE VALUES
			(1, 'GovTech', 'govtech', 2),
			(2, 'E-Commerce', 'e-commerce', 1),
			(3, 'Education', 'education', 3)`)
	testutil.Exec(t, pool, `
		INSERT INTO technology (id, name, slug) OVERRIDING SYSTEM VALUE VALUES
			(5, 'Go', 'go'),
			(6, 'PostgreSQL', 'postgresql')`)
	testutil.Exec(t, pool, `
		INSERT INTO client (id, name, slug) OVERRIDING SYSTEM VALUE VALUES
			(9, 'Desa Wisata', 'desa-wisata')`)
}

func countRows(t *testing.T, pool *pgxpool.Pool, sql string, args ...any) int {
	t.Helper()
	var count int
	require.NoError(t, pool.QueryRow(context.Background(), sql, args...).Scan(&count))
	return count
}

/*
TestPostgresRepository exercises the aggregate against a real PostgreSQL.
*/
func TestPostgresRepository(t *testing.T) {
	pool := testutil.StartPostgres(t)
	repo := portfolio.NewPostgresRepository(pool)
	ctx := context.Background()

	t.Run("create_and_replace_links", func(t *testing.T) {
		seed(t, pool)

		id, err := repo.Create(ctx, &portfolio.Payload{
			Name:         "Village Portal",
			Description:  "desc",
			Results:      []string{"40% faster permits", "12 villages onboarded"},
			StartDate:    "2024-03-01",
			Categories:   []int64{1, 2},
			Technologies: []int64{5},
		}, "editor-1")
		require.NoError(t, err)

		created, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Len(t, created.Categories, 2)
		assert.Len(t, created.Technologies, 1)
		assert.Empty(t, created.Clients)
		assert.True(t, created.Active)
		assert.False(t, created.Featured)
		assert.Equal(t, "2024-03-01", created.StartDate)
		assert.Empty(t, created.EndDate)
		assert.Equal(t, []string{"40% faster permits", "12 villages onboarded"}, created.Results)
		assert.Equal(t, "editor-1", created.CreatedBy)

		// Ordered by sort order, then name
		assert.Equal(t, "E-Commerce", created.Categories[0].Name)
		assert.Equal(t, []string{"E-Commerce", "GovTech"}, created.CategoryNames)

		// Full replace, not merge
		err = repo.Update(ctx, id, &portfolio.Payload{Name: "Village Portal v2", Description: "desc2", Categories: []int64{3}}, "editor-2")
		require.NoError(t, err)

		updated, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		require.Len(t, updated.Categories, 1)
		assert.Equal(t, int64(3), updated.Categories[0].ID)
		assert.Empty(t, updated.Technologies)
		assert.Empty(t, updated.Results)
		assert.Empty(t, updated.StartDate)
		assert.Equal(t, "editor-2", updated.UpdatedBy)
	})

	t.Run("update_is_idempotent", func(t *testing.T) {
		seed(t, pool)

		id, err := repo.Create(ctx, &portfolio.Payload{Name: "n", Description: "d"}, "")
		require.NoError(t, err)

		payload := &portfolio.Payload{Name: "n", Description: "d", Categories: []int64{1, 2}, Technologies: []int64{5, 6}, Clients: []int64{9}}
		require.NoError(t, repo.Update(ctx, id, payload, ""))
		first, err := repo.FindByID(ctx, id)
		require.NoError(t, err)

		require.NoError(t, repo.Update(ctx, id, payload, ""))
		second, err := repo.FindByID(ctx, id)
		require.NoError(t, err)

		assert.Equal(t, first.Categories, second.Categories)
		assert.Equal(t, first.Technologies, second.Technologies)
		assert.Equal(t, first.Clients, second.Clients)
		assert.Equal(t, 2, countRows(t, pool, `SELECT COUNT(*) FROM portfolio_category WHERE portfolio_id = $1`, id))
	})

	t.Run("failed_create_leaves_nothing", func(t *testing.T) {
		seed(t, pool)

		_, err := repo.Create(ctx, &portfolio.Payload{
			Name: "Broken", Description: "d", Categories: []int64{1}, Technologies: []int64{5, 404},
		}, "")
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.CodeValidation, ae.Code)
		require.Len(t, ae.Details, 1)
		assert.Equal(t, portfolio.FieldTechnologies, ae.Details[0].Field)
		assert.Contains(t, ae.Details[0].Message, "404")

		assert.Zero(t, countRows(t, pool, `SELECT COUNT(*) FROM portfolio`))
		assert.Zero(t, countRows(t, pool, `SELECT COUNT(*) FROM portfolio_category`))
	})

	t.Run("failed_update_keeps_old_state", func(t *testing.T) {
		seed(t, pool)

		id, err := repo.Create(ctx, &portfolio.Payload{Name: "Stable", Description: "d", Categories: []int64{1}, Clients: []int64{9}}, "")
		require.NoError(t, err)
		before, err := repo.FindByID(ctx, id)
		require.NoError(t, err)

		err = repo.Update(ctx, id, &portfolio.Payload{Name: "Changed", Description: "d", Categories: []int64{2}, Clients: []int64{77}}, "")
		assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

		after, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("update_unknown_id", func(t *testing.T) {
		seed(t, pool)

		err := repo.Update(ctx, 12345, &portfolio.Payload{Name: "n", Description: "d"}, "")
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})

	t.Run("list_enrichment_is_distinct", func(t *testing.T) {
		seed(t, pool)

		_, err := repo.Create(ctx, &portfolio.Payload{
			Name: "Cross", Description: "d",
			Categories: []int64{1, 2}, Technologies: []int64{5, 6}, Clients: []int64{9},
		}, "")
		require.NoError(t, err)

		rows, err := repo.ListActive(ctx, portfolio.Filter{})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"E-Commerce", "GovTech"}, rows[0].CategoryNames)
		assert.Equal(t, []string{"Go", "PostgreSQL"}, rows[0].TechnologyNames)
		assert.Equal(t, []string{"Desa Wisata"}, rows[0].ClientNames)
	})

	t.Run("list_filters", func(t *testing.T) {
		seed(t, pool)

		for _, payload := range []*portfolio.Payload{
			{Name: "A", Description: "d", Categories: []int64{1}},
			{Name: "B", Description: "d", Featured: true},
			{Name: "C", Description: "d", Categories: []int64{2}},
		} {
			_, err := repo.Create(ctx, payload, "")
			require.NoError(t, err)
		}

		featured, err := repo.ListActive(ctx, portfolio.Filter{FeaturedOnly: true})
		require.NoError(t, err)
		require.Len(t, featured, 1)
		assert.Equal(t, "B", featured[0].Name)

		govtech, err := repo.ListActive(ctx, portfolio.Filter{CategorySlug: "govtech"})
		require.NoError(t, err)
		require.Len(t, govtech, 1)
		assert.Equal(t, "A", govtech[0].Name)

		// Newest first
		limited, err := repo.ListActive(ctx, portfolio.Filter{Limit: 2})
		require.NoError(t, err)
		require.Len(t, limited, 2)
		assert.Equal(t, "C", limited[0].Name)
	})

	t.Run("soft_delete_and_restore", func(t *testing.T) {
		seed(t, pool)

		id, err := repo.Create(ctx, &portfolio.Payload{Name: "Hidden", Description: "d", Categories: []int64{1}, Technologies: []int64{6}}, "")
		require.NoError(t, err)
		before, err := repo.FindByID(ctx, id)
		require.NoError(t, err)

		require.NoError(t, repo.SoftDelete(ctx, id))
		assert.True(t, apperr.HasCode(repo.SoftDelete(ctx, id), apperr.CodeNotFound))

		active, err := repo.ListActive(ctx, portfolio.Filter{})
		require.NoError(t, err)
		assert.Empty(t, active)

		_, err = repo.FindByID(ctx, id)
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, portfolio.StatusDeleted, all[0].Status)

		require.NoError(t, repo.Restore(ctx, id))
		after, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, before, after)

		// Restoring an active row is a no-op; unknown ids are not found
		assert.NoError(t, repo.Restore(ctx, id))
		assert.True(t, apperr.HasCode(repo.Restore(ctx, 999), apperr.CodeNotFound))
	})

	t.Run("hard_delete_cascades", func(t *testing.T) {
		seed(t, pool)

		id, err := repo.Create(ctx, &portfolio.Payload{Name: "Gone", Description: "d", Categories: []int64{1}, Clients: []int64{9}}, "")
		require.NoError(t, err)
		require.NoError(t, repo.SoftDelete(ctx, id))

		require.NoError(t, repo.HardDelete(ctx, id))
		assert.Zero(t, countRows(t, pool, `SELECT COUNT(*) FROM portfolio_category WHERE portfolio_id = $1`, id))
		assert.Zero(t, countRows(t, pool, `SELECT COUNT(*) FROM portfolio_client WHERE portfolio_id = $1`, id))
		assert.True(t, apperr.HasCode(repo.HardDelete(ctx, id), apperr.CodeNotFound))
	})

	t.Run("count_by_region_is_case_sensitive", func(t *testing.T) {
		seed(t, pool)

		for _, payload := range []*portfolio.Payload{
			{Name: "Keraton", Description: "d", Region: "Yogyakarta"},
			{Name: "Malioboro", Description: "d", Region: "Yogyakarta"},
			{Name: "Prambanan", Description: "d", Region: "yogyakarta"},
			{Name: "Nowhere", Description: "d"},
		} {
			_, err := repo.Create(ctx, payload, "")
			require.NoError(t, err)
		}

		groups, err := repo.CountByRegion(ctx)
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, "Yogyakarta", groups[0].Region)
		assert.Equal(t, 2, groups[0].Count)
		assert.Equal(t, []string{"Keraton", "Malioboro"}, groups[0].Names)
		assert.Equal(t, "yogyakarta", groups[1].Region)
		assert.Equal(t, 1, groups[1].Count)
	})
}
