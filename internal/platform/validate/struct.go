// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/kahasolusi/internal/platform/apperr"
)

var (
	structValidator     *validator.Validate
	structValidatorOnce sync.Once
)

// engine returns the shared tag validator with the project's custom rules.
func engine() *validator.Validate {
	structValidatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())

		// Report JSON names instead of Go field names
		structValidator.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = structValidator.RegisterValidation("date", func(level validator.FieldLevel) bool {
			value := level.Field().String()
			if value == "" {
				return true
			}
			_, err := time.Parse(DateLayout, value)
			return err == nil
		})

		_ = structValidator.RegisterValidation("httpurl", func(level validator.FieldLevel) bool {
			value := level.Field().String()
			return value == "" || IsHTTPURL(value)
		})

		_ = structValidator.RegisterValidation("notblank", func(level validator.FieldLevel) bool {
			return strings.TrimSpace(level.Field().String()) != ""
		})
	})
	return structValidator
}

// Struct checks `validate` tags on target and returns a VALIDATION_ERROR listing
// every failed field, or nil.
func Struct(target any) error {
	err := engine().Struct(target)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperr.Internal(fmt.Errorf("validate: %w", err))
	}

	details := make([]apperr.FieldError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		details = append(details, apperr.FieldError{
			Field:   fieldPath(fieldError),
			Message: describe(fieldError),
		})
	}

	return apperr.ValidationError("Validation failed", details...)
}

// fieldPath drops the root struct name from the namespace ("payload.items[0].name" -> "items[0].name").
func fieldPath(fieldError validator.FieldError) string {
	namespace := fieldError.Namespace()
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}
	return fieldError.Field()
}

func describe(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required", "notblank":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "url", "httpurl":
		return "Must be an absolute http(s) URL"
	case "date":
		return "Must be a date in YYYY-MM-DD format"
	case "max":
		return fmt.Sprintf("Maximum %s characters", fieldError.Param())
	case "min":
		return fmt.Sprintf("Minimum %s characters", fieldError.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fieldError.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fieldError.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", fieldError.Param())
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fieldError.Param(), " ", ", ")
	default:
		return "Invalid value"
	}
}
