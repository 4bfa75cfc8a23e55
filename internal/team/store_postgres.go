// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package team

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

// PostgresRepository implements [Repository]. The list columns are TEXT[]
// and map straight onto []string.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository returns a repository bound to a ready database handle.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanMember(row pgx.Row) (*Member, error) {
	member := &Member{}
	err := row.Scan(
		&member.ID, &member.FullName, &member.Position, &member.Bio, &member.PhotoURL,
		&member.Skills, &member.Certifications, &member.Specializations,
		&member.YearsExperience, &member.LinkedInURL, &member.GithubURL,
		&member.Active, &member.SortOrder, &member.CreatedAt, &member.UpdatedAt,
	)
	return member, err
}

func writable() []string {
	table := schema.TeamMember
	return []string{
		table.FullName, table.Position, table.Bio, table.PhotoURL,
		table.Skills, table.Certifications, table.Specializations,
		table.YearsExperience, table.LinkedInURL, table.GithubURL, table.SortOrder,
	}
}

func writeArgs(payload *Payload) []any {
	return []any{
		payload.FullName, payload.Position, payload.Bio, payload.PhotoURL,
		payload.Skills, payload.Certifications, payload.Specializations,
		payload.YearsExperience, payload.LinkedInURL, payload.GithubURL, payload.SortOrder,
	}
}

// List returns members ordered by sort_order, then full name.
func (repository *PostgresRepository) List(context context.Context, includeInactive bool) ([]*Member, error) {
	table := schema.TeamMember

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("SELECT %s FROM %s", strings.Join(table.Columns(), ", "), table.Table))
	if !includeInactive {
		queryBuilder.WriteString(" WHERE " + table.Active)
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s, %s, %s", table.SortOrder, table.FullName, table.ID))

	rows, err := repository.db.Query(context, queryBuilder.String())
	if err != nil {
		return nil, dberr.Wrap(err, "list team members")
	}

	members, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Member, error) {
		return scanMember(row)
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan team member")
	}

	return members, nil
}

// FindByID retrieves one member, active or not.
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Member, error) {
	table := schema.TeamMember
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", strings.Join(table.Columns(), ", "), table.Table, table.ID)

	member, err := scanMember(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "Team member", "find team member")
	}

	return member, nil
}

// Create inserts a member and returns its identifier.
func (repository *PostgresRepository) Create(context context.Context, payload *Payload) (int64, error) {
	table := schema.TeamMember
	columns := writable()

	placeholders := make([]string, len(columns))
	for index := range columns {
		placeholders[index] = fmt.Sprintf("$%d", index+1)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES (%s, COALESCE($%d, TRUE))
		RETURNING %s`,
		table.Table, strings.Join(columns, ", "), table.Active,
		strings.Join(placeholders, ", "), len(columns)+1,
		table.ID,
	)

	var id int64
	if err := repository.db.QueryRow(context, query, append(writeArgs(payload), payload.Active)...).Scan(&id); err != nil {
		return 0, dberr.Wrap(err, "insert team member")
	}

	return id, nil
}

// Update replaces the writable fields. A nil Active keeps the current flag.
func (repository *PostgresRepository) Update(context context.Context, id int64, payload *Payload) error {
	table := schema.TeamMember
	columns := writable()

	assignments := make([]string, len(columns))
	for index, column := range columns {
		assignments[index] = fmt.Sprintf("%s = $%d", column, index+1)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s, %s = COALESCE($%d, %s), %s = NOW()
		WHERE %s = $%d`,
		table.Table,
		strings.Join(assignments, ", "), table.Active, len(columns)+1, table.Active, table.UpdatedAt,
		table.ID, len(columns)+2,
	)

	result, err := repository.db.Exec(context, query, append(writeArgs(payload), payload.Active, id)...)
	if err != nil {
		return dberr.Wrap(err, "update team member")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Team member")
	}

	return nil
}

// Delete removes a member permanently.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	table := schema.TeamMember
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table.Table, table.ID)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete team member")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Team member")
	}

	return nil
}
