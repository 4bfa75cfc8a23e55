// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package portfolio

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kahasolusi/internal/platform/middleware"
	requestutil "github.com/taibuivan/kahasolusi/internal/platform/request"
	"github.com/taibuivan/kahasolusi/internal/platform/respond"
	"github.com/taibuivan/kahasolusi/internal/platform/sec"
)

// Handler implements the HTTP layer for the portfolio aggregate.
type Handler struct {
	service *Service
}

// NewHandler constructs a new portfolio [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// createdResponse is returned by POST /portfolio.
type createdResponse struct {
	ID int64 `json:"id"`
}

// Routes returns a [chi.Router] configured with the portfolio endpoints.
//
// # Access Control
//
//   - Public: active listing, region aggregation, single lookup.
//   - Editor: create, update, soft delete, restore, management listing.
//   - Admin: permanent purge.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.list)
	router.Get("/by-region", handler.byRegion)
	router.Get("/{id}", handler.get)

	// Editor and above
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Get("/all", handler.listAll)
		editorRoute.Post("/", handler.create)
		editorRoute.Put("/{id}", handler.update)
		editorRoute.Delete("/{id}", handler.softDelete)
		editorRoute.Post("/{id}/restore", handler.restore)

		// Admin strict only
		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}/purge", handler.purge)
	})

	return router
}

/*
GET /api/v1/portfolio.

Description: Lists active portfolios, newest first, with linked category,
technology and client names.

Request:
  - category: string (Optional category slug)
  - featured: bool (Optional, featured only)
  - limit: int (Optional, positive)

Response:
  - 200: []Portfolio: Success
  - 400: ErrValidation: Invalid limit
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	limit, err := requestutil.IntQuery(request, FieldLimit, 0)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		CategorySlug: request.URL.Query().Get(FieldCategory),
		FeaturedOnly: requestutil.BoolQuery(request, FieldFeatured),
		Limit:        limit,
	}

	portfolios, err := handler.service.ListActive(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, portfolios)
}

/*
GET /api/v1/portfolio/all.

Description: Lists every portfolio including soft-deleted ones, each with a
status of "Active" or "Deleted".

Response:
  - 200: []Portfolio: Success
  - 401/403: Missing or insufficient role
*/
func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	portfolios, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, portfolios)
}

/*
GET /api/v1/portfolio/by-region.

Description: Groups active portfolios by their region label.

Response:
  - 200: []RegionGroup: Success
*/
func (handler *Handler) byRegion(writer http.ResponseWriter, request *http.Request) {
	groups, err := handler.service.ByRegion(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, groups)
}

/*
GET /api/v1/portfolio/{id}.

Description: Retrieves one active portfolio with its full linked records.

Request:
  - id: int64

Response:
  - 200: Portfolio: Success
  - 400: ErrValidation: Malformed id
  - 404: ErrNotFound: Unknown or soft-deleted
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	portfolio, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, portfolio)
}

/*
POST /api/v1/portfolio.

Description: Creates a portfolio with its category, technology and client links.

Request:
  - Payload (JSON)

Response:
  - 201: {id}: Created
  - 400: ErrValidation: Missing name/description, malformed fields or unknown link ids
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload Payload
	if err := requestutil.DecodeJSON(writer, request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.service.Create(request.Context(), &payload, requestutil.Actor(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, createdResponse{ID: id})
}

/*
PUT /api/v1/portfolio/{id}.

Description: Replaces every scalar field and every link set of an active portfolio.

Request:
  - id: int64
  - Payload (JSON, complete)

Response:
  - 200: Portfolio: Updated aggregate
  - 400: ErrValidation
  - 404: ErrNotFound
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

	portfolio, err := handler.service.Update(request.Context(), id, &payload, requestutil.Actor(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, portfolio)
}

/*
DELETE /api/v1/portfolio/{id}.

Description: Soft delete. The portfolio disappears from public reads and can be restored.

Response:
  - 204: No Content
  - 404: ErrNotFound: Unknown or already deleted
*/
func (handler *Handler) softDelete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SoftDelete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/portfolio/{id}/restore.

Response:
  - 200: Portfolio: Restored aggregate
  - 404: ErrNotFound: Unknown id
*/
func (handler *Handler) restore(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	portfolio, err := handler.service.Restore(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, portfolio)
}

/*
DELETE /api/v1/portfolio/{id}/purge?confirm={id}.

Description: Permanently removes a portfolio and its links. Irreversible.

Response:
  - 204: No Content
  - 400: ErrValidation: Confirmation missing or different from the id
  - 404: ErrNotFound
*/
func (handler *Handler) purge(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Purge(request.Context(), id, request.URL.Query().Get(FieldConfirm)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
