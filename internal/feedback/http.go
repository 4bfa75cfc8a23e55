// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kahasolusi/internal/platform/middleware"
	requestutil "github.com/taibuivan/kahasolusi/internal/platform/request"
	"github.com/taibuivan/kahasolusi/internal/platform/respond"
	"github.com/taibuivan/kahasolusi/internal/platform/sec"
	"github.com/taibuivan/kahasolusi/pkg/pagination"
)

// Handler implements the HTTP layer for visitor feedback.
type Handler struct {
	service *Service
}

// NewHandler constructs a new feedback [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the feedback endpoints.
//
// # Access Control
//
//   - Public: submit, displayed testimonials.
//   - Editor: paginated moderation list, lookup, flag changes, delete.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Post("/", handler.submit)
	router.Get("/displayed", handler.displayed)

	// Editor and above
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Get("/", handler.list)
		editorRoute.Get("/{id}", handler.get)
		editorRoute.Patch("/{id}", handler.updateFlags)
		editorRoute.Delete("/{id}", handler.delete)
	})

	return router
}

/*
POST /api/v1/feedback.

Description: Stores a visitor submission with the caller's IP and user agent.
New entries are neither displayed nor read.

Request:
  - Submission (JSON)

Response:
  - 201: Entry: Created
  - 400: ErrValidation
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var submission Submission
	if err := requestutil.DecodeJSON(writer, request, &submission); err != nil {
		respond.Error(writer, request, err)
		return
	}

	origin := Origin{IPAddress: middleware.RealIP(request), UserAgent: request.UserAgent()}

	entry, err := handler.service.Submit(request.Context(), &submission, origin)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

/*
GET /api/v1/feedback/displayed.

Request:
  - limit: int (Optional, default 20, max 100)

Response:
  - 200: []Testimonial: Success
*/
func (handler *Handler) displayed(writer http.ResponseWriter, request *http.Request) {
	limit, err := requestutil.IntQuery(request, FieldLimit, pagination.DefaultLimit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	testimonials, err := handler.service.Displayed(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, testimonials)
}

/*
GET /api/v1/feedback.

Request:
  - page: int (Optional, default 1)
  - limit: int (Optional, default 20, max 100)
  - unread: bool (Optional)

Response:
  - 200: []Entry + meta: Success
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Params:     pagination.FromRequest(request),
		UnreadOnly: requestutil.BoolQuery(request, FieldUnread),
	}

	entries, meta, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, meta)
}

// GET /api/v1/feedback/{id}.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
PATCH /api/v1/feedback/{id}.

Request:
  - FlagsPatch (JSON, at least one flag)

Response:
  - 200: Entry: Updated
  - 400: ErrValidation: No flag provided
  - 404: ErrNotFound
*/
func (handler *Handler) updateFlags(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch FlagsPatch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.UpdateFlags(request.Context(), id, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

// DELETE /api/v1/feedback/{id}.
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
