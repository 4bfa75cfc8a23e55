// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package company

import (
	"context"
	"strings"

	"github.com/taibuivan/kahasolusi/internal/platform/ctxutil"
	"github.com/taibuivan/kahasolusi/internal/platform/validate"
)

// Service exposes the company profile.
type Service struct {
	repo Repository
}

// NewService constructs a new company [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the stored profile.
func (service *Service) Get(context context.Context) (*Profile, error) {
	return service.repo.Get(context)
}

// Save validates the payload and overwrites the profile.
func (service *Service) Save(context context.Context, payload *Payload, actor string) (*Profile, error) {
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.TrimSpace(payload.Email)

	if err := validate.Struct(payload); err != nil {
		return nil, err
	}

	profile, err := service.repo.Save(context, payload, actor)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("company_profile_saved")
	return profile, nil
}
