// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cta

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/kahasolusi/internal/platform/ctxutil"
	"github.com/taibuivan/kahasolusi/internal/platform/validate"
)

// Service applies the contact action rules.
type Service struct {
	repo Repository
}

// NewService constructs a new contact action [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns active actions, or all of them when includeInactive is set.
func (service *Service) List(context context.Context, includeInactive bool) ([]*Action, error) {
	return service.repo.List(context, includeInactive)
}

// Get returns one action.
func (service *Service) Get(context context.Context, id int64) (*Action, error) {
	return service.repo.FindByID(context, id)
}

// Create validates and stores an action.
func (service *Service) Create(context context.Context, payload *Payload) (*Action, error) {
	if err := prepare(payload); err != nil {
		return nil, err
	}

	action, err := service.repo.Create(context, payload)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("contact_action_created", slog.Int64("cta_id", action.ID), slog.String("cta_type", action.CTAType))
	return action, nil
}

// Update validates and replaces an action.
func (service *Service) Update(context context.Context, id int64, payload *Payload) (*Action, error) {
	if err := prepare(payload); err != nil {
		return nil, err
	}

	action, err := service.repo.Update(context, id, payload)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("contact_action_updated", slog.Int64("cta_id", id))
	return action, nil
}

// Delete removes an action.
func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	ctxutil.GetLogger(context).Info("contact_action_deleted", slog.Int64("cta_id", id))
	return nil
}

func prepare(payload *Payload) error {
	payload.CTAType = strings.ToLower(strings.TrimSpace(payload.CTAType))
	payload.Title = strings.TrimSpace(payload.Title)
	payload.URL = strings.TrimSpace(payload.URL)
	payload.Contact = strings.TrimSpace(payload.Contact)

	return validate.Struct(payload)
}
