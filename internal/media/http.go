// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kahasolusi/internal/platform/middleware"
	requestutil "github.com/taibuivan/kahasolusi/internal/platform/request"
	"github.com/taibuivan/kahasolusi/internal/platform/respond"
	"github.com/taibuivan/kahasolusi/internal/platform/sec"
)

// Handler implements the HTTP layer for the media gallery.
type Handler struct {
	service *Service
}

// NewHandler constructs a new media [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the media endpoints.
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
		editorRoute.Patch("/{id}/toggle", handler.toggle)
		editorRoute.Delete("/{id}", handler.delete)
	})

	return router
}

/*
GET /api/v1/media.

Request:
  - type: string (Optional, image | video | document | embed)
  - include_inactive: bool (Optional, honoured for editors only)

Response:
  - 200: []Item: Success
  - 400: ErrValidation: Unknown type
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		MediaType:       request.URL.Query().Get(FieldType),
		IncludeInactive: requestutil.BoolQuery(request, FieldIncludeInactive) && requestutil.HasRole(request, sec.RoleEditor),
	}

	items, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, items)
}

// GET /api/v1/media/{id}.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}

// POST /api/v1/media.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload Payload
	if err := requestutil.DecodeJSON(writer, request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.Create(request.Context(), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, item)
}

// PUT /api/v1/media/{id}.
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

	item, err := handler.service.Update(request.Context(), id, &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}

// PATCH /api/v1/media/{id}/toggle.
func (handler *Handler) toggle(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.ToggleActive(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}

// DELETE /api/v1/media/{id}.
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
