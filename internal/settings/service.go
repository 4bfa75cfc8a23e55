// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/taibuivan/kahasolusi/internal/platform/ctxutil"
	"github.com/taibuivan/kahasolusi/internal/platform/validate"
)

// Service exposes site settings.
type Service struct {
	repo Repository
}

// NewService constructs a new settings [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// All returns every setting as a key to value map.
func (service *Service) All(context context.Context) (map[string]string, error) {
	settings, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}

	return values, nil
}

/*
Update changes the value of an existing setting.

Description: The value is checked against the type declared for the key
(boolean, number, email, url or free text).

Parameters:
  - context: context.Context
  - key: string
  - payload: *Payload
  - actor: string (Recorded in updated_by)

Returns:
  - *Setting: The stored setting
  - error: NotFound for an unknown key, ValidationError, storage errors
*/
func (service *Service) Update(context context.Context, key string, payload *Payload, actor string) (*Setting, error) {
	key = strings.TrimSpace(key)
	value := strings.TrimSpace(payload.Value)

	current, err := service.repo.Find(context, key)
	if err != nil {
		return nil, err
	}

	if err := validateValue(current.Type, value); err != nil {
		return nil, err
	}

	setting, err := service.repo.UpdateValue(context, key, value, actor)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("setting_updated",
		slog.String("setting_key", key),
		slog.String("actor", actor),
	)

	return setting, nil
}

func validateValue(valueType, value string) error {
	validator := &validate.Validator{}
	validator.MaxLen(FieldValue, value, maxValueLength)

	switch valueType {
	case TypeBoolean:
		validator.OneOf(FieldValue, value, "true", "false")
	case TypeNumber:
		_, err := strconv.ParseFloat(value, 64)
		validator.Custom(FieldValue, err != nil, "Must be a number")
	case TypeEmail:
		validator.Email(FieldValue, value)
	case TypeURL:
		validator.URL(FieldValue, value)
	}

	return validator.Err()
}
