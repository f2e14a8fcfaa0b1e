package adaptor

import (
	"net/http"

	"airport-booking/internal/dto/request"
	"airport-booking/internal/usecase"
	"airport-booking/pkg/utils"

	"go.uber.org/zap"
)

type CrewHandler struct {
	service usecase.CrewService
	log     *zap.Logger
}

func NewCrewHandler(service usecase.CrewService, log *zap.Logger) *CrewHandler {
	return &CrewHandler{
		service: service,
		log:     log.With(zap.String("handler", "crew")),
	}
}

// List handles GET /api/crew
func (h *CrewHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListCrew(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list crew")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// Get handles GET /api/crew/{id}
func (h *CrewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.service.GetCrew(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get crew")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// Create handles POST /api/crew (admin)
func (h *CrewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CrewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.service.CreateCrew(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create crew")
		return
	}

	utils.ResponseCreated(w, "success", item)
}

// Update handles PUT /api/crew/{id} (admin)
func (h *CrewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.CrewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.service.UpdateCrew(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update crew")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// Delete handles DELETE /api/crew/{id} (admin)
func (h *CrewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteCrew(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete crew")
		return
	}

	utils.ResponseNoContent(w)
}
