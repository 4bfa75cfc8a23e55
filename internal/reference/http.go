// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kahasolusi/internal/platform/middleware"
	requestutil "github.com/taibuivan/kahasolusi/internal/platform/request"
	"github.com/taibuivan/kahasolusi/internal/platform/respond"
	"github.com/taibuivan/kahasolusi/internal/platform/sec"
)

// Handler implements the HTTP layer for one reference [Kind].
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the reference endpoints.
//
// # Access Control
//
//   - Public: listing, lookup by id or slug.
//   - Editor: inactive records in listings, create, update, toggle, delete.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.list)
	router.Get("/slug/{slug}", handler.getBySlug)
	router.Get("/{id}", handler.get)

	// Editor and above
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.create)
		editorRoute.Put("/{id}", handler.update)
		editorRoute.Patch("/{id}/toggle-active", handler.toggleActive)
		editorRoute.Delete("/{id}", handler.delete)
	})

	return router
}

/*
GET /api/v1/{categories|technologies|clients}.

Description: Lists records ordered by sort order, then name, each with the
number of portfolios linking to it.

Request:
  - include_inactive: bool (Optional, honoured for editors only)

Response:
  - 200: []Reference: Success
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	includeInactive := requestutil.BoolQuery(request, FieldIncludeInactive) &&
		requestutil.HasRole(request, sec.RoleEditor)

	references, err := handler.service.List(request.Context(), includeInactive)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, references)
}

/*
GET /api/v1/{categories|technologies|clients}/{id}.

Response:
  - 200: Reference: Success
  - 404: ErrNotFound
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reference, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reference)
}

/*
GET /api/v1/{categories|technologies|clients}/slug/{slug}.

Response:
  - 200: Reference: Success
  - 404: ErrNotFound
*/
func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	reference, err := handler.service.GetBySlug(request.Context(), requestutil.Param(request, FieldSlug))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reference)
}

/*
POST /api/v1/{categories|technologies|clients}.

Description: Creates a record. The slug is derived from the name when omitted.

Request:
  - Payload (JSON)

Response:
  - 201: Reference: Created
  - 400: ErrValidation
  - 409: ErrConflict: Duplicate name or slug
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload Payload
	if err := requestutil.DecodeJSON(writer, request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	reference, err := handler.service.Create(request.Context(), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, reference)
}

/*
PUT /api/v1/{categories|technologies|clients}/{id}.

Response:
  - 200: Reference: Updated
  - 400: ErrValidation
  - 404: ErrNotFound
  - 409: ErrConflict
*/
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

	reference, err := handler.service.Update(request.Context(), id, &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reference)
}

// PATCH /api/v1/{categories|technologies|clients}/{id}/toggle-active.
func (handler *Handler) toggleActive(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reference, err := handler.service.ToggleActive(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reference)
}

/*
DELETE /api/v1/{categories|technologies|clients}/{id}.

Description: Removes the record and every portfolio link to it.

Response:
  - 204: No Content
  - 404: ErrNotFound
*/
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
