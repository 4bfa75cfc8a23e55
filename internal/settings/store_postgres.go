// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

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

func scanSetting(row pgx.Row) (*Setting, error) {
	setting := &Setting{}
	err := row.Scan(
		&setting.Key, &setting.Value, &setting.Type, &setting.Description,
		&setting.UpdatedAt, &setting.UpdatedBy,
	)
	return setting, err
}

func columns() string {
	return strings.Join(schema.SystemSetting.Columns(), ", ")
}

// List returns all settings ordered by key.
func (repository *PostgresRepository) List(context context.Context) ([]*Setting, error) {
	table := schema.SystemSetting
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", columns(), table.Table, table.Key)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list settings")
	}

	settings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Setting, error) {
		return scanSetting(row)
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan setting")
	}

	return settings, nil
}

// Find retrieves one setting by key.
func (repository *PostgresRepository) Find(context context.Context, key string) (*Setting, error) {
	table := schema.SystemSetting
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", columns(), table.Table, table.Key)

	setting, err := scanSetting(repository.db.QueryRow(context, query, key))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "Setting", "find setting")
	}

	return setting, nil
}

// UpdateValue rewrites the value of key. No row is created for unknown keys.
func (repository *PostgresRepository) UpdateValue(context context.Context, key, value, actor string) (*Setting, error) {
	table := schema.SystemSetting
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		table.Table, table.Value, table.UpdatedBy, table.UpdatedAt,
		table.Key,
		columns(),
	)

	setting, err := scanSetting(repository.db.QueryRow(context, query, key, value, actor))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "Setting", "update setting")
	}

	return setting, nil
}
