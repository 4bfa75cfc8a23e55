// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package portfolio

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/kahasolusi/internal/platform/apperr"
	"github.com/taibuivan/kahasolusi/internal/platform/database/schema"
	"github.com/taibuivan/kahasolusi/internal/platform/dberr"
	"github.com/taibuivan/kahasolusi/internal/platform/postgres"
	"github.com/taibuivan/kahasolusi/pkg/slice"
)

// # Writes

// writePlaceholders renders bind placeholders for [schema.PortfolioTable.Writable],
// casting the date columns from their YYYY-MM-DD string form.
func writePlaceholders() []string {
	columns := schema.Portfolio.Writable()
	placeholders := make([]string, len(columns))
	for index, column := range columns {
		placeholder := "$" + strconv.Itoa(index+1)
		if column == schema.Portfolio.StartDate || column == schema.Portfolio.EndDate {
			placeholder = fmt.Sprintf("NULLIF(%s, '')::date", placeholder)
		}
		placeholders[index] = placeholder
	}
	return placeholders
}

// writeArgs returns the scalar bind values in [schema.PortfolioTable.Writable] order.
func writeArgs(payload *Payload, resultsJSON string) []any {
	return []any{
		payload.Name, payload.Description, payload.CaseStudy, payload.ProblemStatement, resultsJSON,
		payload.ImageURL, payload.ProjectURL, payload.VideoURL, payload.StartDate, payload.EndDate,
		payload.Featured, payload.Region,
	}
}

/*
Create persists a new portfolio and its link sets.

Description: Runs inside one transaction: insert the scalar row, verify that
every linked id exists, then write the junction rows. Any failure rolls the
whole operation back, so no partially linked portfolio is ever visible.

Parameters:
  - context: context.Context
  - payload: *Payload
  - actor: string

Returns:
  - int64: The generated identifier
  - error: ValidationError for unknown link ids, Persistence otherwise
*/
func (repository *PostgresRepository) Create(context context.Context, payload *Payload, actor string) (int64, error) {
	resultsJSON, err := encodeResults(payload.Results)
	if err != nil {
		return 0, err
	}

	table := schema.Portfolio
	columns := table.Writable()
	placeholders := writePlaceholders()
	actorPlaceholder := "$" + strconv.Itoa(len(columns)+1)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES (%s, %s, %s)
		RETURNING %s`,
		table.Table, strings.Join(columns, ", "), table.CreatedBy, table.UpdatedBy,
		strings.Join(placeholders, ", "), actorPlaceholder, actorPlaceholder,
		table.ID,
	)
	args := append(writeArgs(payload, resultsJSON), actor)

	var id int64
	err = postgres.WithTx(context, repository.db, func(transaction pgx.Tx) error {
		if err := transaction.QueryRow(context, query, args...).Scan(&id); err != nil {
			return dberr.Wrap(err, "insert portfolio")
		}
		return repository.replaceLinks(context, transaction, id, payload)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

/*
Update replaces the scalar fields and all link sets of an active portfolio.

Description: Within one transaction the scalar row is overwritten (zero rows
affected means not found), every junction row of the portfolio is deleted and
the payload's sets are inserted again. The end state depends only on the
payload, so repeating the call is idempotent.

Parameters:
  - context: context.Context
  - id: int64
  - payload: *Payload
  - actor: string

Returns:
  - error: apperr.NotFound, ValidationError for unknown link ids, Persistence otherwise
*/
func (repository *PostgresRepository) Update(context context.Context, id int64, payload *Payload, actor string) error {
	resultsJSON, err := encodeResults(payload.Results)
	if err != nil {
		return err
	}

	table := schema.Portfolio
	columns := table.Writable()
	placeholders := writePlaceholders()

	assignments := make([]string, len(columns))
	for index, column := range columns {
		assignments[index] = column + " = " + placeholders[index]
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s, %s = $%d, %s = NOW()
		WHERE %s = $%d AND %s`,
		table.Table,
		strings.Join(assignments, ", "), table.UpdatedBy, len(columns)+1, table.UpdatedAt,
		table.ID, len(columns)+2, table.Active,
	)
	args := append(writeArgs(payload, resultsJSON), actor, id)

	return postgres.WithTx(context, repository.db, func(transaction pgx.Tx) error {
		result, err := transaction.Exec(context, query, args...)
		if err != nil {
			return dberr.Wrap(err, "update portfolio")
		}

		// Missing or soft-deleted rows
		if result.RowsAffected() == 0 {
			return apperr.NotFound("Portfolio")
		}

		return repository.replaceLinks(context, transaction, id, payload)
	})
}

// replaceLinks validates and rewrites the three link sets of a portfolio.
func (repository *PostgresRepository) replaceLinks(context context.Context, transaction pgx.Tx, id int64, payload *Payload) error {
	sets := []struct {
		link  schema.JunctionTable
		field string
		ids   []int64
	}{
		{schema.PortfolioCategory, FieldCategories, payload.Categories},
		{schema.PortfolioTechnology, FieldTechnologies, payload.Technologies},
		{schema.PortfolioClient, FieldClients, payload.Clients},
	}

	// Verify every referenced id before touching junction rows
	var details []apperr.FieldError
	for _, set := range sets {
		missing, err := repository.missingIDs(context, transaction, set.link.Ref, set.ids)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			details = append(details, apperr.FieldError{Field: set.field, Message: "Unknown ids: " + joinIDs(missing)})
		}
	}
	if len(details) > 0 {
		return apperr.ValidationError("Referenced records do not exist", details...)
	}

	for _, set := range sets {
		if err := repository.updateJunction(context, transaction, set.link, id, set.ids); err != nil {
			return err
		}
	}

	return nil
}

// missingIDs returns the ids absent from the reference table, in request order.
func (repository *PostgresRepository) missingIDs(context context.Context, transaction pgx.Tx, ref schema.ReferenceTable, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ANY($1)", ref.ID, ref.Table, ref.ID)
	rows, err := transaction.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "check "+ref.Table+" ids")
	}

	found, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, dberr.Wrap(err, "scan "+ref.Table+" ids")
	}

	return slice.Difference(ids, found), nil
}

/*
updateJunction replaces the link set of one relationship table.

Description: Clear and insert. Every existing row for the portfolio is deleted,
then the new pairs are queued on a single pgx.Batch.

Parameters:
  - context: context.Context
  - transaction: pgx.Tx
  - link: schema.JunctionTable
  - id: int64 (Portfolio identifier)
  - refIDs: []int64 (Unique, verified reference identifiers)

Returns:
  - error: Persistence errors
*/
func (repository *PostgresRepository) updateJunction(context context.Context, transaction pgx.Tx, link schema.JunctionTable, id int64, refIDs []int64) error {
	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", link.Table, link.PortfolioID)
	if _, err := transaction.Exec(context, deleteQuery, id); err != nil {
		return dberr.Wrap(err, "clear "+link.Table)
	}

	if len(refIDs) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)", link.Table, link.PortfolioID, link.RefID)
	batch := &pgx.Batch{}
	for _, refID := range refIDs {
		batch.Queue(insertQuery, id, refID)
	}

	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "insert "+link.Table)
	}

	return nil
}

// # Lifecycle

/*
SoftDelete hides an active portfolio from public reads.

Returns:
  - error: apperr.NotFound if the id is unknown or already inactive
*/
func (repository *PostgresRepository) SoftDelete(context context.Context, id int64) error {
	table := schema.Portfolio
	query := fmt.Sprintf("UPDATE %s SET %s = FALSE WHERE %s = $1 AND %s", table.Table, table.Active, table.ID, table.Active)

	return repository.execOne(context, query, id, "soft delete portfolio")
}

/*
Restore makes a portfolio publicly visible again.

Returns:
  - error: apperr.NotFound if the id does not exist at all
*/
func (repository *PostgresRepository) Restore(context context.Context, id int64) error {
	table := schema.Portfolio
	query := fmt.Sprintf("UPDATE %s SET %s = TRUE WHERE %s = $1", table.Table, table.Active, table.ID)

	return repository.execOne(context, query, id, "restore portfolio")
}

/*
HardDelete permanently removes a portfolio, active or not. Junction rows
are removed by ON DELETE CASCADE.
*/
func (repository *PostgresRepository) HardDelete(context context.Context, id int64) error {
	table := schema.Portfolio
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table.Table, table.ID)

	return repository.execOne(context, query, id, "purge portfolio")
}

// execOne runs a single-row statement and maps zero affected rows to NotFound.
func (repository *PostgresRepository) execOne(context context.Context, query string, id int64, action string) error {
	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, action)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Portfolio")
	}

	return nil
}

func joinIDs(ids []int64) string {
	return strings.Join(slice.Map(ids, func(id int64) string { return strconv.FormatInt(id, 10) }), ", ")
}
