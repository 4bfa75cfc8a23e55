// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/kahasolusi/internal/platform/constants"
	"github.com/taibuivan/kahasolusi/internal/platform/ctxutil"
	"github.com/taibuivan/kahasolusi/internal/platform/validate"
	"github.com/taibuivan/kahasolusi/pkg/slug"
)

// # Service Layer

// Service applies the shared reference rules for one [Kind].
type Service struct {
	kind Kind
	repo Repository
}

// NewService constructs a new reference [Service].
func NewService(kind Kind, repo Repository) *Service {
	return &Service{kind: kind, repo: repo}
}

// Kind reports which reference table the service manages.
func (service *Service) Kind() Kind {
	return service.kind
}

// List returns active records, or every record when includeInactive is set.
func (service *Service) List(context context.Context, includeInactive bool) ([]*Reference, error) {
	return service.repo.List(context, includeInactive)
}

// Get returns one record by id.
func (service *Service) Get(context context.Context, id int64) (*Reference, error) {
	return service.repo.FindByID(context, id)
}

// GetBySlug returns one record by slug.
func (service *Service) GetBySlug(context context.Context, value string) (*Reference, error) {
	return service.repo.FindBySlug(context, strings.TrimSpace(value))
}

/*
Create validates and stores a new record.

Description: When the slug is empty it is derived from the name.

Parameters:
  - context: context.Context
  - payload: *Payload

Returns:
  - *Reference: The stored record
  - error: ValidationError, Conflict on duplicate name or slug
*/
func (service *Service) Create(context context.Context, payload *Payload) (*Reference, error) {
	if err := service.prepare(payload); err != nil {
		return nil, err
	}

	reference, err := service.repo.Create(context, payload)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("reference_created",
		slog.String("kind", string(service.kind)),
		slog.Int64("reference_id", reference.ID),
		slog.String("slug", reference.Slug),
	)

	return reference, nil
}

// Update replaces the writable fields of a record.
func (service *Service) Update(context context.Context, id int64, payload *Payload) (*Reference, error) {
	if err := service.prepare(payload); err != nil {
		return nil, err
	}

	reference, err := service.repo.Update(context, id, payload)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("reference_updated",
		slog.String("kind", string(service.kind)),
		slog.Int64("reference_id", id),
	)

	return reference, nil
}

// ToggleActive flips the active flag. Inactive records drop out of public
// listings and portfolio enrichment but keep their links.
func (service *Service) ToggleActive(context context.Context, id int64) (*Reference, error) {
	reference, err := service.repo.ToggleActive(context, id)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("reference_toggled",
		slog.String("kind", string(service.kind)),
		slog.Int64("reference_id", id),
		slog.Bool("active", reference.Active),
	)

	return reference, nil
}

// Delete removes a record together with its portfolio links.
func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	ctxutil.GetLogger(context).Warn("reference_deleted",
		slog.String("kind", string(service.kind)),
		slog.Int64("reference_id", id),
	)
	return nil
}

// prepare normalises the payload in place and validates it.
func (service *Service) prepare(payload *Payload) error {
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Slug = strings.TrimSpace(payload.Slug)
	payload.Description = strings.TrimSpace(payload.Description)
	payload.LogoURL = strings.TrimSpace(payload.LogoURL)

	if payload.Slug == "" {
		payload.Slug = slug.From(payload.Name)
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, payload.Name).MaxLen(FieldName, payload.Name, constants.MaxNameLength)

	// A name made only of symbols yields no slug
	switch {
	case payload.Name == "":
	case payload.Slug == "":
		validator.Custom(FieldSlug, true, "Cannot be derived from the name, provide one")
	default:
		validator.Slug(FieldSlug, payload.Slug).MaxLen(FieldSlug, payload.Slug, slug.MaxLength)
	}

	validator.URL(FieldLogoURL, payload.LogoURL).MaxLen(FieldLogoURL, payload.LogoURL, constants.MaxURLLength)

	return validator.Err()
}
