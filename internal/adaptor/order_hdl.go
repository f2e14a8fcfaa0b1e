package adaptor

import (
	"net/http"

	"airport-booking/internal/dto/request"
	"airport-booking/internal/usecase"
	"airport-booking/pkg/utils"

	"go.uber.org/zap"
)

type OrderHandler struct {
	orders  usecase.OrderService
	tickets usecase.TicketService
	log     *zap.Logger
}

func NewOrderHandler(orders usecase.OrderService, tickets usecase.TicketService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders:  orders,
		tickets: tickets,
		log:     log.With(zap.String("handler", "order")),
	}
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Order created", order)
}

// List handles GET /api/orders?page=&page_size=
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := request.PaginatedRequest{
		Page:     utils.ParseInt(query.Get("page"), 1),
		PageSize: utils.ParseInt(query.Get("page_size"), 0),
	}

	orders, err := h.orders.ListOrders(r.Context(), userID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}

// Get handles GET /api/orders/{id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orderID, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		handleServiceError(h.log, w, err, "get order")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}

// Delete handles DELETE /api/orders/{id}; the order's seats become free again.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orderID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.orders.DeleteOrder(r.Context(), userID, orderID); err != nil {
		handleServiceError(h.log, w, err, "delete order")
		return
	}

	utils.ResponseNoContent(w)
}

// AddTicket handles POST /api/orders/{id}/tickets
func (h *OrderHandler) AddTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orderID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.TicketRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ticket, err := h.tickets.CreateTicket(r.Context(), userID, orderID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "add ticket")
		return
	}

	utils.ResponseCreated(w, "Ticket booked", ticket)
}
