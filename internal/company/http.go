// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package company

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kahasolusi/internal/platform/middleware"
	requestutil "github.com/taibuivan/kahasolusi/internal/platform/request"
	"github.com/taibuivan/kahasolusi/internal/platform/respond"
	"github.com/taibuivan/kahasolusi/internal/platform/sec"
)

// Handler implements the HTTP layer for the company profile.
type Handler struct {
	service *Service
}

// NewHandler constructs a new company [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the company endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.get)
	router.With(middleware.RequireRole(sec.RoleEditor)).Put("/", handler.save)

	return router
}

/*
GET /api/v1/company.

Response:
  - 200: Profile: Success
  - 404: ErrNotFound: Never saved
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.service.Get(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

/*
PUT /api/v1/company.

Description: Creates or overwrites the profile.

Request:
  - Payload (JSON)

Response:
  - 200: Profile: Saved
  - 400: ErrValidation
*/
func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	var payload Payload
	if err := requestutil.DecodeJSON(writer, request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.Save(request.Context(), &payload, requestutil.Actor(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}
