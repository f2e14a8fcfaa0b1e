package adaptor

import (
	"net/http"

	"airport-booking/internal/dto/request"
	"airport-booking/internal/usecase"
	"airport-booking/pkg/utils"

	"go.uber.org/zap"
)

type AirportHandler struct {
	service usecase.AirportService
	log     *zap.Logger
}

func NewAirportHandler(service usecase.AirportService, log *zap.Logger) *AirportHandler {
	return &AirportHandler{
		service: service,
		log:     log.With(zap.String("handler", "airport")),
	}
}

// List handles GET /api/airports?city=Kyiv,Lviv
func (h *AirportHandler) List(w http.ResponseWriter, r *http.Request) {
	cities := utils.ParseCSV(r.URL.Query().Get("city"))

	airports, err := h.service.ListAirports(r.Context(), cities)
	if err != nil {
		handleServiceError(h.log, w, err, "list airports")
		return
	}

	utils.ResponseSuccess(w, "success", airports)
}

// Get handles GET /api/airports/{id}
func (h *AirportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	airport, err := h.service.GetAirport(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get airport")
		return
	}

	utils.ResponseSuccess(w, "success", airport)
}

// Create handles POST /api/airports (admin)
func (h *AirportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.AirportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	airport, err := h.service.CreateAirport(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create airport")
		return
	}

	utils.ResponseCreated(w, "success", airport)
}

// Update handles PUT /api/airports/{id} (admin)
func (h *AirportHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.AirportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	airport, err := h.service.UpdateAirport(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update airport")
		return
	}

	utils.ResponseSuccess(w, "success", airport)
}

// Delete handles DELETE /api/airports/{id} (admin)
func (h *AirportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteAirport(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete airport")
		return
	}

	utils.ResponseNoContent(w)
}
