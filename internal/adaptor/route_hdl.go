package adaptor

import (
	"net/http"

	"airport-booking/internal/dto/request"
	"airport-booking/internal/usecase"
	"airport-booking/pkg/utils"

	"go.uber.org/zap"
)

type RouteHandler struct {
	service usecase.RouteService
	log     *zap.Logger
}

func NewRouteHandler(service usecase.RouteService, log *zap.Logger) *RouteHandler {
	return &RouteHandler{
		service: service,
		log:     log.With(zap.String("handler", "route")),
	}
}

// List handles GET /api/routes
func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListRoutes(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list route")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// Get handles GET /api/routes/{id}
func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.service.GetRoute(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get route")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// Create handles POST /api/routes (admin)
func (h *RouteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.RouteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.service.CreateRoute(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create route")
		return
	}

	utils.ResponseCreated(w, "success", item)
}

// Update handles PUT /api/routes/{id} (admin)
func (h *RouteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.RouteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.service.UpdateRoute(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update route")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// Delete handles DELETE /api/routes/{id} (admin)
func (h *RouteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteRoute(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete route")
		return
	}

	utils.ResponseNoContent(w)
}
