// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package team

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/kahasolusi/internal/platform/ctxutil"
	"github.com/taibuivan/kahasolusi/internal/platform/validate"
	"github.com/taibuivan/kahasolusi/pkg/pointer"
	"github.com/taibuivan/kahasolusi/pkg/slice"
)

// Service applies the team member rules.
type Service struct {
	repo Repository
}

// NewService constructs a new team [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns active members, or all of them when includeInactive is set.
func (service *Service) List(context context.Context, includeInactive bool) ([]*Member, error) {
	return service.repo.List(context, includeInactive)
}

// Get returns one member.
func (service *Service) Get(context context.Context, id int64) (*Member, error) {
	return service.repo.FindByID(context, id)
}

// Create validates and stores a member.
func (service *Service) Create(context context.Context, payload *Payload) (*Member, error) {
	if err := prepare(payload); err != nil {
		return nil, err
	}

	id, err := service.repo.Create(context, payload)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("team_member_created",
		slog.Int64("member_id", id),
		slog.Bool("active", pointer.Fallback(payload.Active, true)),
	)
	return service.repo.FindByID(context, id)
}

// Update validates and replaces a member.
func (service *Service) Update(context context.Context, id int64, payload *Payload) (*Member, error) {
	if err := prepare(payload); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, id, payload); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("team_member_updated", slog.Int64("member_id", id))
	return service.repo.FindByID(context, id)
}

// Delete removes a member.
func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	ctxutil.GetLogger(context).Info("team_member_deleted", slog.Int64("member_id", id))
	return nil
}

// prepare trims text, cleans the tag lists and validates the payload.
func prepare(payload *Payload) error {
	payload.FullName = strings.TrimSpace(payload.FullName)
	payload.Position = strings.TrimSpace(payload.Position)
	payload.Skills = cleanList(payload.Skills)
	payload.Certifications = cleanList(payload.Certifications)
	payload.Specializations = cleanList(payload.Specializations)

	return validate.Struct(payload)
}

// cleanList trims entries, drops blanks and duplicates, and never returns nil.
func cleanList(values []string) []string {
	trimmed := slice.Map(values, strings.TrimSpace)
	cleaned := slice.Unique(slice.Filter(trimmed, func(value string) bool { return value != "" }))
	if cleaned == nil {
		return []string{}
	}
	return cleaned
}
