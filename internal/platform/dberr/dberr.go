// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/kahasolusi/internal/platform/apperr"
)

// PostgreSQL SQLSTATE codes classified by [Wrap].
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	notNullViolation    = "23502"
	checkViolation      = "23514"
	dataExceptionClass  = "22"
)

// Wrap inspects a database error and converts it into an [apperr.AppError].
//
// The action names what was being attempted ("create portfolio") and is kept in
// the cause chain for server logs only. Errors that are already an AppError are
// returned untouched so that domain decisions made inside a transaction survive.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if apperr.IsAppError(err) {
		return err
	}

	// 1. Missing rows
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Resource")
	}

	cause := fmt.Errorf("postgres: %s: %w", action, err)

	// 2. Constraint classification
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolation:
			conflict := apperr.Conflict(conflictMessage(pgErr))
			conflict.Cause = cause
			return conflict
		case pgErr.Code == foreignKeyViolation:
			invalid := apperr.ValidationError("Referenced record does not exist")
			invalid.Cause = cause
			return invalid
		case pgErr.Code == notNullViolation, pgErr.Code == checkViolation,
			strings.HasPrefix(pgErr.Code, dataExceptionClass):
			invalid := apperr.ValidationError("Invalid value for " + columnOrField(pgErr))
			invalid.Cause = cause
			return invalid
		}
	}

	// 3. Everything else is a persistence failure
	return apperr.Persistence(cause)
}

// WrapNotFound behaves like [Wrap] but names the missing resource.
func WrapNotFound(err error, resource, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}
	return Wrap(err, action)
}

// conflictMessage builds a client-safe message from a unique violation.
func conflictMessage(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName == "" {
		return "Record already exists"
	}
	return "Record already exists (" + pgErr.ConstraintName + ")"
}

func columnOrField(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	return "field"
}
