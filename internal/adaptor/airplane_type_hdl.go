package adaptor

import (
	"net/http"

	"airport-booking/internal/dto/request"
	"airport-booking/internal/usecase"
	"airport-booking/pkg/utils"

	"go.uber.org/zap"
)

type AirplaneTypeHandler struct {
	service usecase.AirplaneTypeService
	log     *zap.Logger
}

func NewAirplaneTypeHandler(service usecase.AirplaneTypeService, log *zap.Logger) *AirplaneTypeHandler {
	return &AirplaneTypeHandler{
		service: service,
		log:     log.With(zap.String("handler", "airplane_type")),
	}
}

// List handles GET /api/airplane-types
func (h *AirplaneTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListAirplaneTypes(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list airplane type")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// Get handles GET /api/airplane-types/{id}
func (h *AirplaneTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.service.GetAirplaneType(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get airplane type")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// Create handles POST /api/airplane-types (admin)
func (h *AirplaneTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.AirplaneTypeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.service.CreateAirplaneType(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create airplane type")
		return
	}

	utils.ResponseCreated(w, "success", item)
}

// Update handles PUT /api/airplane-types/{id} (admin)
func (h *AirplaneTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.AirplaneTypeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.service.UpdateAirplaneType(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update airplane type")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// Delete handles DELETE /api/airplane-types/{id} (admin)
func (h *AirplaneTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteAirplaneType(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete airplane type")
		return
	}

	utils.ResponseNoContent(w)
}
