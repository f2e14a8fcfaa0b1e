package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"airport-booking/internal/apperror"
	"airport-booking/internal/data/entity"
	"airport-booking/internal/data/repository"
	"airport-booking/internal/dto/request"
	"airport-booking/internal/dto/response"
	"airport-booking/pkg/metrics"
	"airport-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderDetailResponse, error)
	ListOrders(ctx context.Context, userID uuid.UUID, req request.PaginatedRequest) (*response.PaginatedResponse[response.OrderListResponse], error)
	GetOrder(ctx context.Context, userID uuid.UUID, orderID int64) (*response.OrderDetailResponse, error)
	DeleteOrder(ctx context.Context, userID uuid.UUID, orderID int64) error
}

type orderService struct {
	repo      *repository.Repository
	publisher EventPublisher
	metrics   metrics.Booking
	pages     utils.OrdersConfig
	log       *zap.Logger
}

func NewOrderService(repo *repository.Repository, infra Infra, pages utils.OrdersConfig, log *zap.Logger) OrderService {
	infra = infra.withDefaults()
	return &orderService{
		repo:      repo,
		publisher: infra.Publisher,
		metrics:   infra.Metrics,
		pages:     pages,
		log:       log.With(zap.String("service", "order")),
	}
}

// CreateOrder stores the order and all of its tickets in one transaction.
// Any rejected ticket rolls the whole order back; the error names the ticket index.
func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderDetailResponse, error) {
	if len(req.Tickets) == 0 {
		return nil, apperror.ErrEmptyOrder
	}

	order := &entity.Order{UserID: userID}
	err := s.repo.Tx.WithinTx(ctx, func(tx *repository.Repository) error {
		if err := tx.Order.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for i, ticketReq := range req.Tickets {
			if _, err := bookTicket(ctx, tx, order.ID, ticketReq); err != nil {
				return apperror.AtTicket(err, i)
			}
		}
		return nil
	})

	if err != nil {
		if isSeatConflict(err) {
			s.metrics.SeatConflict()
		}
		s.log.Warn("Order rejected",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("tickets", len(req.Tickets)),
		)
		return nil, err
	}

	s.metrics.OrderCreated(len(req.Tickets))
	s.log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.String("user_id", userID.String()),
		zap.Int("tickets", len(req.Tickets)),
	)

	tickets := make([]OrderEventTicket, len(req.Tickets))
	for i, t := range req.Tickets {
		tickets[i] = OrderEventTicket{FlightID: t.Flight, Row: t.Row, Seat: t.Seat}
	}
	s.publish(ctx, EventOrderCreated, order, tickets)

	if err := s.attachTickets(ctx, []*entity.Order{order}, true); err != nil {
		return nil, err
	}

	resp := response.OrderToDetailResponse(order)
	return &resp, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID, req request.PaginatedRequest) (*response.PaginatedResponse[response.OrderListResponse], error) {
	req = req.Normalize(s.pages.PageSize, s.pages.MaxPageSize)

	orders, err := s.repo.Order.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	total, err := s.repo.Order.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	if err := s.attachTickets(ctx, orders, false); err != nil {
		return nil, err
	}

	orderResponses := make([]response.OrderListResponse, len(orders))
	for i, order := range orders {
		orderResponses[i] = response.OrderToListResponse(order)
	}

	s.log.Debug("Orders retrieved",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(orders)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
	)

	return response.NewPaginatedResponse(orderResponses, req.Page, req.PageSize, total), nil
}

func (s *orderService) GetOrder(ctx context.Context, userID uuid.UUID, orderID int64) (*response.OrderDetailResponse, error) {
	order, err := s.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.attachTickets(ctx, []*entity.Order{order}, true); err != nil {
		return nil, err
	}

	resp := response.OrderToDetailResponse(order)
	return &resp, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, userID uuid.UUID, orderID int64) error {
	order, err := s.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return err
	}

	if err := s.repo.Order.Delete(ctx, orderID); err != nil {
		return err
	}

	s.log.Info("Order cancelled",
		zap.Int64("order_id", orderID),
		zap.String("user_id", userID.String()),
	)
	s.publish(ctx, EventOrderCancelled, order, nil)
	return nil
}

func (s *orderService) findOwnedOrder(ctx context.Context, userID uuid.UUID, orderID int64) (*entity.Order, error) {
	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}
	if order == nil {
		return nil, apperror.NewNotFound("order", orderID)
	}
	if order.UserID != userID {
		s.log.Warn("Order accessed by another user",
			zap.Int64("order_id", orderID),
			zap.String("user_id", userID.String()),
		)
		return nil, &apperror.AuthorizationError{Resource: "order", ID: orderID}
	}
	return order, nil
}

// attachTickets loads the tickets of orders together with their flights.
// withSeats also loads the taken seats of every flight, for the order detail view.
func (s *orderService) attachTickets(ctx context.Context, orders []*entity.Order, withSeats bool) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]int64, len(orders))
	byID := make(map[int64]*entity.Order, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.ID
		byID[order.ID] = order
		order.Tickets = []*entity.TicketDetails{}
	}

	tickets, err := s.repo.Ticket.FindByOrderIDs(ctx, orderIDs)
	if err != nil {
		return fmt.Errorf("get order tickets: %w", err)
	}

	seen := make(map[int64]struct{})
	var flightIDs []int64
	for _, ticket := range tickets {
		if _, ok := seen[ticket.FlightID]; !ok {
			seen[ticket.FlightID] = struct{}{}
			flightIDs = append(flightIDs, ticket.FlightID)
		}
	}

	flights, err := s.repo.Flight.FindDetailsByIDs(ctx, flightIDs)
	if err != nil {
		return fmt.Errorf("get order flights: %w", err)
	}
	flightByID := make(map[int64]*entity.FlightDetails, len(flights))
	for _, flight := range flights {
		if withSeats {
			flight.TakenSeats, err = s.repo.Flight.FindTakenSeats(ctx, flight.ID)
			if err != nil {
				return fmt.Errorf("get taken seats of flight %d: %w", flight.ID, err)
			}
		}
		flightByID[flight.ID] = flight
	}

	for _, ticket := range tickets {
		flight, ok := flightByID[ticket.FlightID]
		if !ok {
			continue
		}
		order := byID[ticket.OrderID]
		order.Tickets = append(order.Tickets, &entity.TicketDetails{Ticket: *ticket, Flight: *flight})
	}

	return nil
}

// publish emits an order event after commit. Delivery failures are logged only.
func (s *orderService) publish(ctx context.Context, eventType string, order *entity.Order, tickets []OrderEventTicket) {
	event := OrderEvent{
		EventID:    uuid.New(),
		Type:       eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Tickets:    tickets,
		OccurredAt: time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, strconv.FormatInt(order.ID, 10), event); err != nil {
		s.log.Error("Failed to publish order event",
			zap.Error(err),
			zap.String("type", eventType),
			zap.Int64("order_id", order.ID),
		)
	}
}
