// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/kahasolusi/internal/platform/apperr"
	"github.com/taibuivan/kahasolusi/internal/platform/database/schema"
	"github.com/taibuivan/kahasolusi/internal/platform/dberr"
	"github.com/taibuivan/kahasolusi/internal/platform/postgres"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] for one reference table.
type PostgresRepository struct {
	db    postgres.DB
	kind  Kind
	table schema.ReferenceTable
	link  schema.JunctionTable
}

// NewPostgresRepository returns a repository bound to the table of kind.
func NewPostgresRepository(db postgres.DB, kind Kind) *PostgresRepository {
	table, link := kind.tables()
	return &PostgresRepository{db: db, kind: kind, table: table, link: link}
}

// selectColumns renders the columns read by [scanReference], with the usage count last.
func (repository *PostgresRepository) selectColumns() string {
	table := repository.table
	columns := make([]string, 0, len(table.Columns())+1)
	for _, column := range table.Columns() {
		columns = append(columns, "r."+column)
	}

	count := fmt.Sprintf("(SELECT COUNT(*) FROM %s j WHERE j.%s = r.%s)",
		repository.link.Table, repository.link.RefID, table.ID,
	)
	return strings.Join(append(columns, count), ", ")
}

// scanReference scans one row in [PostgresRepository.selectColumns] order.
func scanReference(row pgx.Row) (*Reference, error) {
	reference := &Reference{}
	err := row.Scan(
		&reference.ID, &reference.Name, &reference.Slug, &reference.Description, &reference.LogoURL,
		&reference.Active, &reference.SortOrder, &reference.CreatedAt, &reference.UpdatedAt,
		&reference.PortfolioCount,
	)
	return reference, err
}

// # Reads

// List retrieves records ordered by sort_order, then name.
func (repository *PostgresRepository) List(context context.Context, includeInactive bool) ([]*Reference, error) {
	table := repository.table

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("SELECT %s FROM %s r", repository.selectColumns(), table.Table))
	if !includeInactive {
		queryBuilder.WriteString(fmt.Sprintf(" WHERE r.%s", table.Active))
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY r.%s, r.%s, r.%s", table.SortOrder, table.Name, table.ID))

	rows, err := repository.db.Query(context, queryBuilder.String())
	if err != nil {
		return nil, dberr.Wrap(err, "list "+table.Table)
	}

	references, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Reference, error) {
		return scanReference(row)
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan "+table.Table)
	}

	return references, nil
}

// FindByID retrieves a single record by its primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Reference, error) {
	return repository.findOne(context, repository.table.ID, id)
}

// FindBySlug retrieves a single record by its slug.
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Reference, error) {
	return repository.findOne(context, repository.table.Slug, slug)
}

func (repository *PostgresRepository) findOne(context context.Context, column string, value any) (*Reference, error) {
	query := fmt.Sprintf("SELECT %s FROM %s r WHERE r.%s = $1",
		repository.selectColumns(), repository.table.Table, column,
	)

	reference, err := scanReference(repository.db.QueryRow(context, query, value))
	if err != nil {
		return nil, dberr.WrapNotFound(err, repository.kind.Label(), "find "+repository.table.Table)
	}

	return reference, nil
}

// # Writes

/*
Create inserts a new record.

Description: Active defaults to true when the payload omits it. The stored row
is re-read so the usage count is populated like every other read.

Returns:
  - *Reference: The stored record
  - error: apperr.Conflict on duplicate name or slug
*/
func (repository *PostgresRepository) Create(context context.Context, payload *Payload) (*Reference, error) {
	table := repository.table
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, COALESCE($5, TRUE), $6)
		RETURNING %s`,
		table.Table, table.Name, table.Slug, table.Description, table.LogoURL, table.Active, table.SortOrder,
		table.ID,
	)

	var id int64
	err := repository.db.QueryRow(context, query,
		payload.Name, payload.Slug, payload.Description, payload.LogoURL, payload.Active, payload.SortOrder,
	).Scan(&id)
	if err != nil {
		return nil, dberr.Wrap(err, "insert "+table.Table)
	}

	return repository.FindByID(context, id)
}

/*
Update replaces the writable fields of an existing record.

Description: A nil Active keeps the current flag. updated_at is refreshed.

Returns:
  - *Reference: The stored record
  - error: apperr.NotFound, apperr.Conflict on duplicate name or slug
*/
func (repository *PostgresRepository) Update(context context.Context, id int64, payload *Payload) (*Reference, error) {
	table := repository.table
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = COALESCE($5, %s), %s = $6, %s = NOW()
		WHERE %s = $7`,
		table.Table,
		table.Name, table.Slug, table.Description, table.LogoURL, table.Active, table.Active, table.SortOrder, table.UpdatedAt,
		table.ID,
	)

	result, err := repository.db.Exec(context, query,
		payload.Name, payload.Slug, payload.Description, payload.LogoURL, payload.Active, payload.SortOrder, id,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "update "+table.Table)
	}

	if result.RowsAffected() == 0 {
		return nil, apperr.NotFound(repository.kind.Label())
	}

	return repository.FindByID(context, id)
}

// ToggleActive flips the active flag of a record.
func (repository *PostgresRepository) ToggleActive(context context.Context, id int64) (*Reference, error) {
	table := repository.table
	query := fmt.Sprintf("UPDATE %s SET %s = NOT %s, %s = NOW() WHERE %s = $1",
		table.Table, table.Active, table.Active, table.UpdatedAt, table.ID,
	)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "toggle "+table.Table)
	}

	if result.RowsAffected() == 0 {
		return nil, apperr.NotFound(repository.kind.Label())
	}

	return repository.FindByID(context, id)
}

// Delete removes a record. Junction rows referencing it cascade.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	table := repository.table
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table.Table, table.ID)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete "+table.Table)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound(repository.kind.Label())
	}

	return nil
}
