// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package portfolio

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/taibuivan/kahasolusi/internal/platform/constants"
	"github.com/taibuivan/kahasolusi/internal/platform/ctxutil"
	"github.com/taibuivan/kahasolusi/internal/platform/validate"
	"github.com/taibuivan/kahasolusi/pkg/slice"
)

// # Service Layer

// Service orchestrates the business rules of the portfolio aggregate.
//
// Payloads are normalised and validated here, before any database work. The
// repository owns atomicity and link verification.
type Service struct {
	repo Repository
}

// NewService constructs a new portfolio [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// # Lookups

/*
ListActive returns the public portfolio listing.

Parameters:
  - context: context.Context
  - filter: Filter (Limit must not be negative)

Returns:
  - []*Portfolio: Active rows, newest first
  - error: Validation or storage errors
*/
func (service *Service) ListActive(context context.Context, filter Filter) ([]*Portfolio, error) {
	filter.CategorySlug = strings.TrimSpace(filter.CategorySlug)

	validator := &validate.Validator{}
	validator.Custom(FieldLimit, filter.Limit < 0, "Must be a positive integer")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.ListActive(context, filter)
}

// ListAll returns every portfolio, including soft-deleted ones, for management views.
func (service *Service) ListAll(context context.Context) ([]*Portfolio, error) {
	return service.repo.ListAll(context)
}

// Get returns one active portfolio with its linked records.
func (service *Service) Get(context context.Context, id int64) (*Portfolio, error) {
	return service.repo.FindByID(context, id)
}

// ByRegion returns active portfolio counts grouped by region label.
func (service *Service) ByRegion(context context.Context) ([]*RegionGroup, error) {
	return service.repo.CountByRegion(context)
}

// # Management

/*
Create validates and persists a new portfolio.

Parameters:
  - context: context.Context
  - payload: *Payload
  - actor: string (Authenticated subject)

Returns:
  - int64: The new identifier
  - error: ValidationError before any database work, or storage errors
*/
func (service *Service) Create(context context.Context, payload *Payload, actor string) (int64, error) {
	normalize(payload)
	if err := validatePayload(payload); err != nil {
		return 0, err
	}

	id, err := service.repo.Create(context, payload, actor)
	if err != nil {
		return 0, err
	}

	ctxutil.GetLogger(context).Info("portfolio_created",
		slog.Int64("portfolio_id", id),
		slog.Int("categories", len(payload.Categories)),
		slog.Int("technologies", len(payload.Technologies)),
		slog.Int("clients", len(payload.Clients)),
	)

	return id, nil
}

/*
Update replaces all scalar fields and link sets of an active portfolio.

Returns:
  - *Portfolio: The stored aggregate after the update
  - error: Validation, not found or storage errors
*/
func (service *Service) Update(context context.Context, id int64, payload *Payload, actor string) (*Portfolio, error) {
	normalize(payload)
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, id, payload, actor); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("portfolio_updated", slog.Int64("portfolio_id", id))

	return service.repo.FindByID(context, id)
}

// SoftDelete hides a portfolio from public reads; it can be restored.
func (service *Service) SoftDelete(context context.Context, id int64) error {
	if err := service.repo.SoftDelete(context, id); err != nil {
		return err
	}

	ctxutil.GetLogger(context).Info("portfolio_soft_deleted", slog.Int64("portfolio_id", id))
	return nil
}

// Restore re-activates a soft-deleted portfolio and returns it.
func (service *Service) Restore(context context.Context, id int64) (*Portfolio, error) {
	if err := service.repo.Restore(context, id); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("portfolio_restored", slog.Int64("portfolio_id", id))

	return service.repo.FindByID(context, id)
}

/*
Purge permanently deletes a portfolio.

Description: The caller must echo the identifier in confirm.

Parameters:
  - context: context.Context
  - id: int64
  - confirm: string (Must equal the decimal id)

Returns:
  - error: ValidationError on a missing or wrong confirmation, NotFound, storage errors
*/
func (service *Service) Purge(context context.Context, id int64, confirm string) error {
	if strings.TrimSpace(confirm) != strconv.FormatInt(id, 10) {
		return validate.RequiredError(FieldConfirm, "Must equal the portfolio id")
	}

	if err := service.repo.HardDelete(context, id); err != nil {
		return err
	}

	ctxutil.GetLogger(context).Warn("portfolio_purged", slog.Int64("portfolio_id", id))
	return nil
}

// # Helpers

// normalize trims required text and collapses duplicate link ids.
func normalize(payload *Payload) {
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Description = strings.TrimSpace(payload.Description)
	payload.Categories = slice.Unique(payload.Categories)
	payload.Technologies = slice.Unique(payload.Technologies)
	payload.Clients = slice.Unique(payload.Clients)
}

func validatePayload(payload *Payload) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, payload.Name).MaxLen(FieldName, payload.Name, constants.MaxNameLength)
	validator.Required(FieldDescription, payload.Description)

	validator.URL(FieldImageURL, payload.ImageURL).MaxLen(FieldImageURL, payload.ImageURL, constants.MaxURLLength)
	validator.URL(FieldProjectURL, payload.ProjectURL).MaxLen(FieldProjectURL, payload.ProjectURL, constants.MaxURLLength)
	validator.URL(FieldVideoURL, payload.VideoURL).MaxLen(FieldVideoURL, payload.VideoURL, constants.MaxURLLength)

	validator.Date(FieldStartDate, payload.StartDate)
	validator.Date(FieldEndDate, payload.EndDate)
	validator.MaxLen(FieldRegion, payload.Region, constants.MaxNameLength)

	validator.PositiveIDs(FieldCategories, payload.Categories)
	validator.PositiveIDs(FieldTechnologies, payload.Technologies)
	validator.PositiveIDs(FieldClients, payload.Clients)

	return validator.Err()
}
