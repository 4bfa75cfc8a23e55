// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cta

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kahasolusi/internal/platform/middleware"
	requestutil "github.com/taibuivan/kahasolusi/internal/platform/request"
	"github.com/taibuivan/kahasolusi/internal/platform/respond"
	"github.com/taibuivan/kahasolusi/internal/platform/sec"
)

// Handler implements the HTTP layer for contact actions.
type Handler struct {
	service *Service
}

// NewHandler constructs a new contact action [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the contact action endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	// Editor and above
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.create)
		editorRoute.Put("/{id}", handler.update)
		editorRoute.Delete("/{id}", handler.delete)
	})

	return router
}

// GET /api/v1/cta.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	includeInactive := requestutil.BoolQuery(request, FieldIncludeInactive) &&
		requestutil.HasRole(request, sec.RoleEditor)

	actions, err := handler.service.List(request.Context(), includeInactive)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, actions)
}

// GET /api/v1/cta/{id}.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	action, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, action)
}

/*
POST /api/v1/cta.

Response:
  - 201: Action: Created
  - 400: ErrValidation
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload Payload
	if err := requestutil.DecodeJSON(writer, request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	action, err := handler.service.Create(request.Context(), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, action)
}

// PUT /api/v1/cta/{id}.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload Payload
	if err := requestutil.DecodeJSON(writer, request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	action, err := handler.service.Update(request.Context(), id, &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, action)
}

// DELETE /api/v1/cta/{id}.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
