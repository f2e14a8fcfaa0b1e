package adaptor

import (
	"net/http"

	"airport-booking/internal/dto/request"
	"airport-booking/internal/usecase"
	"airport-booking/pkg/utils"

	"go.uber.org/zap"
)

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

// List handles GET /api/flights (public)
// Query: route, city, arrival_place, destination_place and the
// departure_time_after/before, arrival_time_after/before bounds.
func (h *FlightHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &request.FlightFilter{
		Route:               query.Get("route"),
		City:                query.Get("city"),
		ArrivalPlace:        query.Get("arrival_place"),
		DestinationPlace:    query.Get("destination_place"),
		DepartureTimeAfter:  query.Get("departure_time_after"),
		DepartureTimeBefore: query.Get("departure_time_before"),
		ArrivalTimeAfter:    query.Get("arrival_time_after"),
		ArrivalTimeBefore:   query.Get("arrival_time_before"),
	}

	flights, err := h.service.ListFlights(r.Context(), filter)
	if err != nil {
		handleServiceError(h.log, w, err, "list flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// Get handles GET /api/flights/{id} (public), including the taken seats.
func (h *FlightHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	flight, err := h.service.GetFlight(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get flight")
		return
	}

	utils.ResponseSuccess(w, "success", flight)
}

// Create handles POST /api/flights (admin)
func (h *FlightHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.FlightRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	flight, err := h.service.CreateFlight(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create flight")
		return
	}

	utils.ResponseCreated(w, "success", flight)
}

// Update handles PUT /api/flights/{id} (admin)
func (h *FlightHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.FlightRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	flight, err := h.service.UpdateFlight(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update flight")
		return
	}

	utils.ResponseSuccess(w, "success", flight)
}

// Delete handles DELETE /api/flights/{id} (admin)
func (h *FlightHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteFlight(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete flight")
		return
	}

	utils.ResponseNoContent(w)
}
