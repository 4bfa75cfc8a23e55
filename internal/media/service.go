// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/kahasolusi/internal/platform/ctxutil"
	"github.com/taibuivan/kahasolusi/internal/platform/validate"
)

// Service applies the media rules.
type Service struct {
	repo Repository
}

// NewService constructs a new media [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns items matching the filter. An unknown type is a validation error.
func (service *Service) List(context context.Context, filter Filter) ([]*Item, error) {
	filter.MediaType = strings.ToLower(strings.TrimSpace(filter.MediaType))
	if filter.MediaType != "" {
		validator := &validate.Validator{}
		validator.OneOf(FieldType, filter.MediaType, TypeImage, TypeVideo, TypeDocument, TypeEmbed)
		if err := validator.Err(); err != nil {
			return nil, err
		}
	}

	return service.repo.List(context, filter)
}

// Get returns one item.
func (service *Service) Get(context context.Context, id int64) (*Item, error) {
	return service.repo.FindByID(context, id)
}

// Create validates and stores an item.
func (service *Service) Create(context context.Context, payload *Payload) (*Item, error) {
	if err := prepare(payload); err != nil {
		return nil, err
	}

	item, err := service.repo.Create(context, payload)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("media_created", slog.Int64("media_id", item.ID), slog.String("media_type", item.MediaType))
	return item, nil
}

// Update validates and replaces an item.
func (service *Service) Update(context context.Context, id int64, payload *Payload) (*Item, error) {
	if err := prepare(payload); err != nil {
		return nil, err
	}

	item, err := service.repo.Update(context, id, payload)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("media_updated", slog.Int64("media_id", id))
	return item, nil
}

// ToggleActive flips the active flag.
func (service *Service) ToggleActive(context context.Context, id int64) (*Item, error) {
	item, err := service.repo.ToggleActive(context, id)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("media_toggled", slog.Int64("media_id", id), slog.Bool("active", item.Active))
	return item, nil
}

// Delete removes an item.
func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	ctxutil.GetLogger(context).Info("media_deleted", slog.Int64("media_id", id))
	return nil
}

// prepare normalises and validates the payload. Embeds need embed code;
// every other type needs a media URL.
func prepare(payload *Payload) error {
	payload.MediaType = strings.ToLower(strings.TrimSpace(payload.MediaType))
	payload.Title = strings.TrimSpace(payload.Title)
	payload.MediaURL = strings.TrimSpace(payload.MediaURL)
	payload.EmbedCode = strings.TrimSpace(payload.EmbedCode)

	if err := validate.Struct(payload); err != nil {
		return err
	}

	validator := &validate.Validator{}
	if payload.MediaType == TypeEmbed {
		validator.Required(FieldEmbedCode, payload.EmbedCode)
	} else {
		validator.Required(FieldMediaURL, payload.MediaURL)
	}
	return validator.Err()
}
