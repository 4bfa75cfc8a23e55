// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

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

func scanEntry(row pgx.Row) (*Entry, error) {
	entry := &Entry{}
	err := row.Scan(
		&entry.ID, &entry.VisitorName, &entry.VisitorEmail, &entry.Message,
		&entry.IPAddress, &entry.UserAgent, &entry.IsDisplayed, &entry.IsRead, &entry.CreatedAt,
	)
	return entry, err
}

func columns() string {
	return strings.Join(schema.Feedback.Columns(), ", ")
}

// Create stores a submission with moderation flags off.
func (repository *PostgresRepository) Create(context context.Context, submission *Submission, origin Origin) (*Entry, error) {
	table := schema.Feedback
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`,
		table.Table, table.VisitorName, table.VisitorEmail, table.Message, table.IPAddress, table.UserAgent,
		columns(),
	)

	entry, err := scanEntry(repository.db.QueryRow(context, query,
		submission.VisitorName, submission.VisitorEmail, submission.Message, origin.IPAddress, origin.UserAgent,
	))
	if err != nil {
		return nil, dberr.Wrap(err, "insert feedback")
	}

	return entry, nil
}

// ListDisplayed returns the public testimonials, newest first.
func (repository *PostgresRepository) ListDisplayed(context context.Context, limit int) ([]*Testimonial, error) {
	table := schema.Feedback
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s FROM %s
		WHERE %s
		ORDER BY %s DESC, %s DESC
		LIMIT $1`,
		table.ID, table.VisitorName, table.Message, table.CreatedAt, table.Table,
		table.IsDisplayed,
		table.CreatedAt, table.ID,
	)

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list displayed feedback")
	}

	testimonials, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Testimonial, error) {
		testimonial := &Testimonial{}
		err := row.Scan(&testimonial.ID, &testimonial.VisitorName, &testimonial.Message, &testimonial.CreatedAt)
		return testimonial, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan testimonial")
	}

	return testimonials, nil
}

/*
List returns one page of entries and the filtered total.

Description: The total comes from a separate COUNT so that pages past the end
still report it.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter) ([]*Entry, int, error) {
	table := schema.Feedback

	where := ""
	if filter.UnreadOnly {
		where = " WHERE NOT " + table.IsRead
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", table.Table, where)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count feedback")
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s%s
		ORDER BY %s DESC, %s DESC
		LIMIT $1 OFFSET $2`,
		columns(), table.Table, where,
		table.CreatedAt, table.ID,
	)

	rows, err := repository.db.Query(context, query, filter.Limit, filter.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list feedback")
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Entry, error) {
		return scanEntry(row)
	})
	if err != nil {
		return nil, 0, dberr.Wrap(err, "scan feedback")
	}

	return entries, total, nil
}

// FindByID retrieves one entry.
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Entry, error) {
	table := schema.Feedback
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", columns(), table.Table, table.ID)

	entry, err := scanEntry(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "Feedback", "find feedback")
	}

	return entry, nil
}

// UpdateFlags sets the provided flags and returns the entry.
func (repository *PostgresRepository) UpdateFlags(context context.Context, id int64, patch FlagsPatch) (*Entry, error) {
	table := schema.Feedback
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($1, %s), %s = COALESCE($2, %s)
		WHERE %s = $3
		RETURNING %s`,
		table.Table,
		table.IsDisplayed, table.IsDisplayed, table.IsRead, table.IsRead,
		table.ID,
		columns(),
	)

	entry, err := scanEntry(repository.db.QueryRow(context, query, patch.IsDisplayed, patch.IsRead, id))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "Feedback", "update feedback flags")
	}

	return entry, nil
}

// Delete removes an entry.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	table := schema.Feedback
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table.Table, table.ID)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete feedback")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Feedback")
	}

	return nil
}
