// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/kahasolusi/internal/platform/apperr"
	"github.com/taibuivan/kahasolusi/internal/platform/database/schema"
	"github.com/taibuivan/kahasolusi/internal/platform/dberr"
	"github.com/taibuivan/kahasolusi/internal/platform/postgres"
	"github.com/taibuivan/kahasolusi/pkg/slice"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] on top of a [postgres.DB] handle.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository returns a repository bound to a ready database handle.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// links enumerates the three relationship tables in a fixed order.
var links = []schema.JunctionTable{
	schema.PortfolioCategory,
	schema.PortfolioTechnology,
	schema.PortfolioClient,
}

// # Query Fragments

// scalarColumns renders the portfolio columns in [scanScalars] order.
// Dates are rendered as YYYY-MM-DD, NULL as the empty string.
func scalarColumns(alias string) string {
	table := schema.Portfolio
	column := func(name string) string { return alias + "." + name }
	date := func(name string) string {
		return fmt.Sprintf("COALESCE(to_char(%s, 'YYYY-MM-DD'), '')", column(name))
	}

	return strings.Join([]string{
		column(table.ID), column(table.Name), column(table.Description), column(table.CaseStudy),
		column(table.ProblemStatement), column(table.ResultsJSON), column(table.ImageURL),
		column(table.ProjectURL), column(table.VideoURL), date(table.StartDate), date(table.EndDate),
		column(table.Featured), column(table.Active), column(table.Region),
		column(table.CreatedAt), column(table.UpdatedAt), column(table.CreatedBy), column(table.UpdatedBy),
	}, ", ")
}

// scanScalars returns scan destinations matching [scalarColumns].
func scanScalars(portfolio *Portfolio, resultsJSON *string) []any {
	return []any{
		&portfolio.ID, &portfolio.Name, &portfolio.Description, &portfolio.CaseStudy,
		&portfolio.ProblemStatement, resultsJSON, &portfolio.ImageURL,
		&portfolio.ProjectURL, &portfolio.VideoURL, &portfolio.StartDate, &portfolio.EndDate,
		&portfolio.Featured, &portfolio.Active, &portfolio.Region,
		&portfolio.CreatedAt, &portfolio.UpdatedAt, &portfolio.CreatedBy, &portfolio.UpdatedBy,
	}
}

// linkJoins renders one LEFT JOIN pair per relationship table. Aliases are
// j0/r0 (categories), j1/r1 (technologies), j2/r2 (clients).
func linkJoins(activeRefsOnly bool) string {
	var builder strings.Builder
	for index, link := range links {
		builder.WriteString(fmt.Sprintf(`
		LEFT JOIN %s j%d ON j%d.%s = p.%s
		LEFT JOIN %s r%d ON r%d.%s = j%d.%s`,
			link.Table, index, index, link.PortfolioID, schema.Portfolio.ID,
			link.Ref.Table, index, index, link.Ref.ID, index, link.RefID,
		))
		if activeRefsOnly {
			builder.WriteString(fmt.Sprintf(" AND r%d.%s", index, link.Ref.Active))
		}
	}
	return builder.String()
}

// nameAggregates collects distinct, ordered names per relationship. The
// DISTINCT collapses the row multiplication caused by joining three link tables.
func nameAggregates() string {
	parts := make([]string, 0, len(links))
	for index, link := range links {
		parts = append(parts, fmt.Sprintf(
			"COALESCE(array_agg(DISTINCT r%d.%s ORDER BY r%d.%s) FILTER (WHERE r%d.%s IS NOT NULL), '{}')",
			index, link.Ref.Name, index, link.Ref.Name, index, link.Ref.ID,
		))
	}
	return strings.Join(parts, ",\n\t\t\t")
}

// relatedAggregate renders a JSON array of the distinct linked records of one
// relationship, ordered by sort order then name.
func relatedAggregate(link schema.JunctionTable) string {
	ref := link.Ref
	return fmt.Sprintf(`COALESCE((
				SELECT json_agg(json_build_object(
					'id', x.%s, 'name', x.%s, 'slug', x.%s, 'logo_url', x.%s, 'sort_order', x.%s
				) ORDER BY x.%s, x.%s)
				FROM (
					SELECT DISTINCT r.%s, r.%s, r.%s, r.%s, r.%s
					FROM %s r
					JOIN %s j ON j.%s = r.%s
					WHERE j.%s = p.%s AND r.%s
				) x
			), '[]')`,
		ref.ID, ref.Name, ref.Slug, ref.LogoURL, ref.SortOrder,
		ref.SortOrder, ref.Name,
		ref.ID, ref.Name, ref.Slug, ref.LogoURL, ref.SortOrder,
		ref.Table,
		link.Table, link.RefID, ref.ID,
		link.PortfolioID, schema.Portfolio.ID, ref.Active,
	)
}

// # Reads

/*
ListActive returns active portfolios, newest first.

Description: One grouped query. Each relationship is LEFT JOINed and its
names are collected with array_agg(DISTINCT ...), so a name reachable through
more than one junction row appears once. Only active reference rows count.

Parameters:
  - context: context.Context
  - filter: Filter

Returns:
  - []*Portfolio: Enriched rows (never nil)
  - error: Persistence errors
*/
func (repository *PostgresRepository) ListActive(context context.Context, filter Filter) ([]*Portfolio, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s,
			%s
		FROM %s p%s
		WHERE p.%s`,
		scalarColumns("p"),
		nameAggregates(),
		schema.Portfolio.Table, linkJoins(true),
		schema.Portfolio.Active,
	))

	// Category slug: any linked active category qualifies
	if filter.CategorySlug != "" {
		category := schema.PortfolioCategory
		queryBuilder.WriteString(fmt.Sprintf(`
		AND EXISTS (
			SELECT 1 FROM %s fj
			JOIN %s fc ON fc.%s = fj.%s
			WHERE fj.%s = p.%s AND fc.%s = $%d AND fc.%s
		)`,
			category.Table,
			category.Ref.Table, category.Ref.ID, category.RefID,
			category.PortfolioID, schema.Portfolio.ID, category.Ref.Slug, argID, category.Ref.Active,
		))
		args = append(args, filter.CategorySlug)
		argID++
	}

	// Featured only
	if filter.FeaturedOnly {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.%s", schema.Portfolio.Featured))
	}

	queryBuilder.WriteString(fmt.Sprintf(`
		GROUP BY p.%s
		ORDER BY p.%s DESC, p.%s DESC`,
		schema.Portfolio.ID, schema.Portfolio.CreatedAt, schema.Portfolio.ID,
	))

	if filter.Limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argID))
		args = append(args, filter.Limit)
	}

	return repository.queryList(context, queryBuilder.String(), args, false)
}

/*
ListAll returns every portfolio with a derived Status label.

Description: Same shape as [PostgresRepository.ListActive] without the active
predicates, enriched with every linked reference row.
*/
func (repository *PostgresRepository) ListAll(context context.Context) ([]*Portfolio, error) {
	query := fmt.Sprintf(`
		SELECT %s,
			%s
		FROM %s p%s
		GROUP BY p.%s
		ORDER BY p.%s DESC, p.%s DESC`,
		scalarColumns("p"),
		nameAggregates(),
		schema.Portfolio.Table, linkJoins(false),
		schema.Portfolio.ID,
		schema.Portfolio.CreatedAt, schema.Portfolio.ID,
	)

	return repository.queryList(context, query, nil, true)
}

// queryList executes a grouped list query and hydrates its rows.
func (repository *PostgresRepository) queryList(context context.Context, query string, args []any, withStatus bool) ([]*Portfolio, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list portfolios")
	}
	defer rows.Close()

	portfolios := make([]*Portfolio, 0)
	for rows.Next() {
		portfolio := &Portfolio{}
		var resultsJSON string

		destinations := append(scanScalars(portfolio, &resultsJSON),
			&portfolio.CategoryNames, &portfolio.TechnologyNames, &portfolio.ClientNames,
		)
		if err := rows.Scan(destinations...); err != nil {
			return nil, dberr.Wrap(err, "scan portfolio")
		}

		if portfolio.Results, err = decodeResults(resultsJSON); err != nil {
			return nil, err
		}

		if withStatus {
			portfolio.Status = statusLabel(portfolio.Active)
		}

		portfolios = append(portfolios, portfolio)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate portfolios")
	}

	return portfolios, nil
}

/*
FindByID retrieves one active portfolio with its full linked records.

Description: Each relationship is aggregated by a json_agg sub-query over a
SELECT DISTINCT, so the record lists are deduplicated before encoding. The
name lists are derived from those records.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Portfolio: The hydrated aggregate
  - error: apperr.NotFound when no active row matches
*/
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Portfolio, error) {
	query := fmt.Sprintf(`
		SELECT %s,
			%s,
			%s,
			%s
		FROM %s p
		WHERE p.%s = $1 AND p.%s`,
		scalarColumns("p"),
		relatedAggregate(schema.PortfolioCategory),
		relatedAggregate(schema.PortfolioTechnology),
		relatedAggregate(schema.PortfolioClient),
		schema.Portfolio.Table,
		schema.Portfolio.ID, schema.Portfolio.Active,
	)

	portfolio := &Portfolio{}
	var resultsJSON string
	var categoriesJSON, technologiesJSON, clientsJSON []byte

	destinations := append(scanScalars(portfolio, &resultsJSON), &categoriesJSON, &technologiesJSON, &clientsJSON)
	if err := repository.db.QueryRow(context, query, id).Scan(destinations...); err != nil {
		return nil, dberr.WrapNotFound(err, "Portfolio", "find portfolio")
	}

	var err error
	if portfolio.Results, err = decodeResults(resultsJSON); err != nil {
		return nil, err
	}

	// Hydrate linked records
	for _, target := range []struct {
		raw     []byte
		records *[]Related
		names   *[]string
	}{
		{categoriesJSON, &portfolio.Categories, &portfolio.CategoryNames},
		{technologiesJSON, &portfolio.Technologies, &portfolio.TechnologyNames},
		{clientsJSON, &portfolio.Clients, &portfolio.ClientNames},
	} {
		if err := json.Unmarshal(target.raw, target.records); err != nil {
			return nil, apperr.Persistence(fmt.Errorf("postgres: unmarshal related records: %w", err))
		}
		names := slice.Map(*target.records, func(related Related) string { return related.Name })
		slices.Sort(names)
		if names == nil {
			names = []string{}
		}
		*target.names = names
	}

	return portfolio, nil
}

/*
CountByRegion aggregates active portfolios by exact region label.

Description: Labels are compared byte for byte; "Yogyakarta" and
"yogyakarta" are separate groups. Empty regions are skipped.
*/
func (repository *PostgresRepository) CountByRegion(context context.Context) ([]*RegionGroup, error) {
	table := schema.Portfolio
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*), array_agg(%s ORDER BY %s, %s)
		FROM %s
		WHERE %s AND %s <> ''
		GROUP BY %s
		ORDER BY COUNT(*) DESC, %s ASC`,
		table.Region, table.Name, table.Name, table.ID,
		table.Table,
		table.Active, table.Region,
		table.Region,
		table.Region,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "count portfolios by region")
	}

	groups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*RegionGroup, error) {
		group := &RegionGroup{}
		err := row.Scan(&group.Region, &group.Count, &group.Names)
		return group, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan region group")
	}

	return groups, nil
}

// # Storage Boundary Helpers

// decodeResults parses the results_json column. An empty column decodes to an empty list.
func decodeResults(raw string) ([]string, error) {
	results := make([]string, 0)
	if strings.TrimSpace(raw) == "" {
		return results, nil
	}

	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		return nil, apperr.Persistence(fmt.Errorf("postgres: decode results_json: %w", err))
	}

	return results, nil
}

// encodeResults serialises the ordered results list for the results_json column.
func encodeResults(results []string) (string, error) {
	if results == nil {
		results = []string{}
	}

	encoded, err := json.Marshal(results)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("portfolio: encode results: %w", err))
	}

	return string(encoded), nil
}

func statusLabel(active bool) string {
	if active {
		return StatusActive
	}
	return StatusDeleted
}
