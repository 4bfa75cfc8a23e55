// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

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

// PostgresRepository implements [Repository].
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository returns a repository bound to a ready database handle.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanItem(row pgx.Row) (*Item, error) {
	item := &Item{}
	err := row.Scan(
		&item.ID, &item.MediaType, &item.Title, &item.Description, &item.MediaURL, &item.EmbedCode,
		&item.ThumbnailURL, &item.Active, &item.SortOrder, &item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

func columns() string {
	return strings.Join(schema.Media.Columns(), ", ")
}

// List returns items matching the filter.
func (repository *PostgresRepository) List(context context.Context, filter Filter) ([]*Item, error) {
	table := schema.Media

	var conditions []string
	var args []any
	argID := 1

	if !filter.IncludeInactive {
		conditions = append(conditions, table.Active)
	}

	if filter.MediaType != "" {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", table.MediaType, argID))
		args = append(args, filter.MediaType)
		argID++
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("SELECT %s FROM %s", columns(), table.Table))
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s, %s DESC, %s DESC", table.SortOrder, table.CreatedAt, table.ID))

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list media")
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Item, error) {
		return scanItem(row)
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan media")
	}

	return items, nil
}

// FindByID retrieves one item, active or not.
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Item, error) {
	table := schema.Media
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", columns(), table.Table, table.ID)

	item, err := scanItem(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "Media", "find media")
	}

	return item, nil
}

// Create inserts an item.
func (repository *PostgresRepository) Create(context context.Context, payload *Payload) (*Item, error) {
	table := schema.Media
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, TRUE), $8)
		RETURNING %s`,
		table.Table,
		table.MediaType, table.Title, table.Description, table.MediaURL, table.EmbedCode,
		table.ThumbnailURL, table.Active, table.SortOrder,
		columns(),
	)

	item, err := scanItem(repository.db.QueryRow(context, query,
		payload.MediaType, payload.Title, payload.Description, payload.MediaURL, payload.EmbedCode,
		payload.ThumbnailURL, payload.Active, payload.SortOrder,
	))
	if err != nil {
		return nil, dberr.Wrap(err, "insert media")
	}

	return item, nil
}

// Update replaces the writable fields. A nil Active keeps the current flag.
func (repository *PostgresRepository) Update(context context.Context, id int64, payload *Payload) (*Item, error) {
	table := schema.Media
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = COALESCE($7, %s), %s = $8, %s = NOW()
		WHERE %s = $9
		RETURNING %s`,
		table.Table,
		table.MediaType, table.Title, table.Description, table.MediaURL, table.EmbedCode,
		table.ThumbnailURL, table.Active, table.Active, table.SortOrder, table.UpdatedAt,
		table.ID,
		columns(),
	)

	item, err := scanItem(repository.db.QueryRow(context, query,
		payload.MediaType, payload.Title, payload.Description, payload.MediaURL, payload.EmbedCode,
		payload.ThumbnailURL, payload.Active, payload.SortOrder, id,
	))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "Media", "update media")
	}

	return item, nil
}

// ToggleActive flips the active flag.
func (repository *PostgresRepository) ToggleActive(context context.Context, id int64) (*Item, error) {
	table := schema.Media
	query := fmt.Sprintf("UPDATE %s SET %s = NOT %s, %s = NOW() WHERE %s = $1 RETURNING %s",
		table.Table, table.Active, table.Active, table.UpdatedAt, table.ID, columns(),
	)

	item, err := scanItem(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "Media", "toggle media")
	}

	return item, nil
}

// Delete removes an item.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	table := schema.Media
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table.Table, table.ID)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete media")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Media")
	}

	return nil
}
