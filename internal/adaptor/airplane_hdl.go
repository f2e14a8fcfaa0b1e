package adaptor

import (
	"net/http"

	"airport-booking/internal/dto/request"
	"airport-booking/internal/usecase"
	"airport-booking/pkg/utils"

	"go.uber.org/zap"
)

type AirplaneHandler struct {
	service usecase.AirplaneService
	log     *zap.Logger
}

func NewAirplaneHandler(service usecase.AirplaneService, log *zap.Logger) *AirplaneHandler {
	return &AirplaneHandler{
		service: service,
		log:     log.With(zap.String("handler", "airplane")),
	}
}

// List handles GET /api/airplanes
func (h *AirplaneHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListAirplanes(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list airplane")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// Get handles GET /api/airplanes/{id}
func (h *AirplaneHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.service.GetAirplane(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get airplane")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// Create handles POST /api/airplanes (admin)
func (h *AirplaneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.AirplaneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.service.CreateAirplane(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create airplane")
		return
	}

	utils.ResponseCreated(w, "success", item)
}

// Update handles PUT /api/airplanes/{id} (admin)
func (h *AirplaneHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.AirplaneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.service.UpdateAirplane(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update airplane")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// Delete handles DELETE /api/airplanes/{id} (admin)
func (h *AirplaneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteAirplane(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete airplane")
		return
	}

	utils.ResponseNoContent(w)
}
