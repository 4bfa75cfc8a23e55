// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/kahasolusi/internal/platform/ctxutil"
	"github.com/taibuivan/kahasolusi/internal/platform/validate"
	"github.com/taibuivan/kahasolusi/pkg/pagination"
)

// Service applies the feedback rules.
type Service struct {
	repo Repository
}

// NewService constructs a new feedback [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

/*
Submit validates and stores a visitor submission.

Parameters:
  - context: context.Context
  - submission: *Submission
  - origin: Origin (Client IP and user agent)

Returns:
  - *Entry: The stored entry
  - error: ValidationError or storage errors
*/
func (service *Service) Submit(context context.Context, submission *Submission, origin Origin) (*Entry, error) {
	submission.VisitorName = strings.TrimSpace(submission.VisitorName)
	submission.VisitorEmail = strings.TrimSpace(submission.VisitorEmail)
	submission.Message = strings.TrimSpace(submission.Message)

	if err := validate.Struct(submission); err != nil {
		return nil, err
	}

	origin.UserAgent = truncate(origin.UserAgent, maxUserAgentLength)

	entry, err := service.repo.Create(context, submission, origin)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("feedback_submitted", slog.Int64("feedback_id", entry.ID))
	return entry, nil
}

// Displayed returns public testimonials. The limit is clamped to [1, pagination.MaxLimit].
func (service *Service) Displayed(context context.Context, limit int) ([]*Testimonial, error) {
	if limit < 1 || limit > pagination.MaxLimit {
		limit = pagination.DefaultLimit
	}
	return service.repo.ListDisplayed(context, limit)
}

// List returns one page of entries for moderation.
func (service *Service) List(context context.Context, filter Filter) ([]*Entry, pagination.Meta, error) {
	entries, total, err := service.repo.List(context, filter)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return entries, pagination.NewMeta(filter.Page, filter.Limit, total), nil
}

// Get returns one entry.
func (service *Service) Get(context context.Context, id int64) (*Entry, error) {
	return service.repo.FindByID(context, id)
}

// UpdateFlags changes the moderation flags. At least one flag must be set.
func (service *Service) UpdateFlags(context context.Context, id int64, patch FlagsPatch) (*Entry, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldFlags, patch.IsDisplayed == nil && patch.IsRead == nil, "Provide is_displayed or is_read")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	entry, err := service.repo.UpdateFlags(context, id, patch)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("feedback_flags_updated",
		slog.Int64("feedback_id", id),
		slog.Bool("is_displayed", entry.IsDisplayed),
		slog.Bool("is_read", entry.IsRead),
	)

	return entry, nil
}

// Delete removes an entry.
func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	ctxutil.GetLogger(context).Info("feedback_deleted", slog.Int64("feedback_id", id))
	return nil
}

func truncate(value string, max int) string {
	if utf8.RuneCountInString(value) <= max {
		return value
	}
	return string([]rune(value)[:max])
}
