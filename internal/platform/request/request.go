// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/kahasolusi/internal/platform/apperr"
	"github.com/taibuivan/kahasolusi/internal/platform/constants"
	"github.com/taibuivan/kahasolusi/internal/platform/ctxutil"
	"github.com/taibuivan/kahasolusi/internal/platform/sec"
	"github.com/taibuivan/kahasolusi/internal/platform/validate"
	"github.com/taibuivan/kahasolusi/pkg/convert"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Description: The body is capped at [constants.MaxRequestBodyBytes]. Unknown
fields are ignored.

Parameters:
  - writer: http.ResponseWriter (Used by the body size limiter)
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxRequestBodyBytes)

	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperr.Unprocessable("Request body too large")
		}
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Int64ID parses a named URL parameter as a positive integer identifier.

Returns:
  - int64: The parsed identifier
  - error: apperr.ValidationError when the value is not a positive integer
*/
func Int64ID(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.ValidationError("Invalid identifier",
			apperr.FieldError{Field: name, Message: "Must be a positive integer"},
		)
	}

	return id, nil
}

/*
BoolQuery reads a boolean query parameter. Missing or unparsable values yield false.
*/
func BoolQuery(request *http.Request, name string) bool {
	return convert.ToBool(request.URL.Query().Get(name))
}

/*
IntQuery reads an integer query parameter.

Returns:
  - int: fallback when the parameter is absent
  - error: apperr.ValidationError when the parameter is present but not an integer
*/
func IntQuery(request *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(request.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ValidationError("Invalid query parameter",
			apperr.FieldError{Field: name, Message: "Must be an integer"},
		)
	}

	return value, nil
}

// Actor returns the identifier recorded in created_by / updated_by columns.
func Actor(request *http.Request) string {
	return ctxutil.Actor(request.Context())
}

// HasRole reports whether the request carries a token whose role meets target.
func HasRole(request *http.Request, target sec.UserRole) bool {
	claims := ctxutil.GetAuthUser(request.Context())
	return claims != nil && sec.UserRole(claims.Role).AtLeast(target)
}
