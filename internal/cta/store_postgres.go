// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cta

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

func scanAction(row pgx.Row) (*Action, error) {
	action := &Action{}
	err := row.Scan(
		&action.ID, &action.CTAType, &action.Title, &action.URL, &action.Contact, &action.Description,
		&action.Active, &action.SortOrder, &action.CreatedAt, &action.UpdatedAt,
	)
	return action, err
}

func columns() string {
	return strings.Join(schema.ContactCTA.Columns(), ", ")
}

// List returns actions ordered by sort_order, then id.
func (repository *PostgresRepository) List(context context.Context, includeInactive bool) ([]*Action, error) {
	table := schema.ContactCTA

	where := ""
	if !includeInactive {
		where = " WHERE " + table.Active
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s, %s", columns(), table.Table, where, table.SortOrder, table.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list contact actions")
	}

	actions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Action, error) {
		return scanAction(row)
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan contact action")
	}

	return actions, nil
}

// FindByID retrieves one action, active or not.
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Action, error) {
	table := schema.ContactCTA
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", columns(), table.Table, table.ID)

	action, err := scanAction(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "Contact action", "find contact action")
	}

	return action, nil
}

// Create inserts an action.
func (repository *PostgresRepository) Create(context context.Context, payload *Payload) (*Action, error) {
	table := schema.ContactCTA
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, TRUE), $7)
		RETURNING %s`,
		table.Table,
		table.CTAType, table.Title, table.URL, table.Contact, table.Description, table.Active, table.SortOrder,
		columns(),
	)

	action, err := scanAction(repository.db.QueryRow(context, query,
		payload.CTAType, payload.Title, payload.URL, payload.Contact, payload.Description, payload.Active, payload.SortOrder,
	))
	if err != nil {
		return nil, dberr.Wrap(err, "insert contact action")
	}

	return action, nil
}

// Update replaces the writable fields. A nil Active keeps the current flag.
func (repository *PostgresRepository) Update(context context.Context, id int64, payload *Payload) (*Action, error) {
	table := schema.ContactCTA
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = COALESCE($6, %s), %s = $7, %s = NOW()
		WHERE %s = $8
		RETURNING %s`,
		table.Table,
		table.CTAType, table.Title, table.URL, table.Contact, table.Description,
		table.Active, table.Active, table.SortOrder, table.UpdatedAt,
		table.ID,
		columns(),
	)

	action, err := scanAction(repository.db.QueryRow(context, query,
		payload.CTAType, payload.Title, payload.URL, payload.Contact, payload.Description, payload.Active, payload.SortOrder, id,
	))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "Contact action", "update contact action")
	}

	return action, nil
}

// Delete removes an action.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	table := schema.ContactCTA
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table.Table, table.ID)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete contact action")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Contact action")
	}

	return nil
}
