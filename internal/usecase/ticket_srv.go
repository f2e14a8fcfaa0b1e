package usecase

import (
	"context"
	"errors"
	"fmt"

	"airport-booking/internal/apperror"
	"airport-booking/internal/data/entity"
	"airport-booking/internal/data/repository"
	"airport-booking/internal/dto/request"
	"airport-booking/internal/dto/response"
	"airport-booking/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TicketService interface {
	// CreateTicket adds one ticket to an order owned by userID.
	CreateTicket(ctx context.Context, userID uuid.UUID, orderID int64, req *request.TicketRequest) (*response.TicketResponse, error)
}

type ticketService struct {
	repo    *repository.Repository
	metrics metrics.Booking
	log     *zap.Logger
}

func NewTicketService(repo *repository.Repository, infra Infra, log *zap.Logger) TicketService {
	infra = infra.withDefaults()
	return &ticketService{
		repo:    repo,
		metrics: infra.Metrics,
		log:     log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) CreateTicket(ctx context.Context, userID uuid.UUID, orderID int64, req *request.TicketRequest) (*response.TicketResponse, error) {
	var ticket *entity.Ticket

	err := s.repo.Tx.WithinTx(ctx, func(tx *repository.Repository) error {
		order, err := tx.Order.FindByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order %d: %w", orderID, err)
		}
		if order == nil {
			return apperror.NewNotFound("order", orderID)
		}
		if order.UserID != userID {
			return &apperror.AuthorizationError{Resource: "order", ID: orderID}
		}

		ticket, err = bookTicket(ctx, tx, orderID, *req)
		return err
	})

	if err != nil {
		if isSeatConflict(err) {
			s.metrics.SeatConflict()
		}
		s.log.Warn("Ticket rejected",
			zap.Error(err),
			zap.Int64("order_id", orderID),
			zap.Int64("flight_id", req.Flight),
		)
		return nil, err
	}

	s.metrics.TicketBooked()
	s.log.Info("Ticket created",
		zap.Int64("ticket_id", ticket.ID),
		zap.Int64("order_id", orderID),
		zap.Int64("flight_id", ticket.FlightID),
	)

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

// bookTicket resolves the flight capacity, validates the seat and inserts the
// ticket, all through repos so it joins the caller's transaction.
func bookTicket(ctx context.Context, repos *repository.Repository, orderID int64, req request.TicketRequest) (*entity.Ticket, error) {
	capacity, err := repos.Flight.FindCapacity(ctx, req.Flight)
	if err != nil {
		return nil, fmt.Errorf("get flight %d capacity: %w", req.Flight, err)
	}
	if capacity == nil {
		return nil, &apperror.NotFoundError{
			Resource:    "flight",
			ID:          req.Flight,
			Field:       "flight",
			TicketIndex: apperror.NoTicket,
		}
	}

	if err := ValidateTicket(req.Row, req.Seat, *capacity); err != nil {
		return nil, err
	}

	ticket := &entity.Ticket{
		FlightID: req.Flight,
		OrderID:  orderID,
		Row:      req.Row,
		Seat:     req.Seat,
	}
	if err := repos.Ticket.Create(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

func isSeatConflict(err error) bool {
	var conflict *apperror.ConflictError
	return errors.As(err, &conflict) && conflict.Resource == "ticket"
}
