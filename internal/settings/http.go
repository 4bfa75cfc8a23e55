// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kahasolusi/internal/platform/middleware"
	requestutil "github.com/taibuivan/kahasolusi/internal/platform/request"
	"github.com/taibuivan/kahasolusi/internal/platform/respond"
	"github.com/taibuivan/kahasolusi/internal/platform/sec"
)

// Handler implements the HTTP layer for site settings.
type Handler struct {
	service *Service
}

// NewHandler constructs a new settings [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the settings endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.With(middleware.RequireRole(sec.RoleEditor)).Put("/{key}", handler.update)

	return router
}

/*
GET /api/v1/settings.

Response:
  - 200: map[string]string: Every setting keyed by name
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	values, err := handler.service.All(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, values)
}

/*
PUT /api/v1/settings/{key}.

Request:
  - key: string (Path)
  - Payload (JSON)

Response:
  - 200: Setting: Updated
  - 400: ErrValidation: Value does not match the declared type
  - 404: ErrNotFound: Unknown key
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var payload Payload
	if err := requestutil.DecodeJSON(writer, request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	key := requestutil.Param(request, FieldKey)
	setting, err := handler.service.Update(request.Context(), key, &payload, requestutil.Actor(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, setting)
}
