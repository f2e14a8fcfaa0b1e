package repository

import (
	"context"
	"fmt"

	"airport-booking/internal/data/entity"
	"airport-booking/pkg/database"

	"go.uber.org/zap"
)

type TicketRepository interface {
	// Create inserts a ticket. A taken (flight, row, seat) yields
	// *apperror.ConflictError, an unknown flight *apperror.NotFoundError.
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindByOrderIDs(ctx context.Context, orderIDs []int64) ([]*entity.Ticket, error)
}

type ticketRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewTicketRepository(db database.Querier, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (flight_id, order_id, "row", seat)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		ticket.FlightID,
		ticket.OrderID,
		ticket.Row,
		ticket.Seat,
	).Scan(&ticket.ID)

	if err != nil {
		if appErr := translateConstraint(err); appErr != nil {
			r.log.Debug("Ticket rejected by constraint",
				zap.Error(err),
				zap.Int64("flight_id", ticket.FlightID),
				zap.Int("row", ticket.Row),
				zap.Int("seat", ticket.Seat),
			)
			return appErr
		}
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.Int64("flight_id", ticket.FlightID),
			zap.Int64("order_id", ticket.OrderID),
		)
		return fmt.Errorf("create ticket: %w", err)
	}

	return nil
}

func (r *ticketRepository) FindByOrderIDs(ctx context.Context, orderIDs []int64) ([]*entity.Ticket, error) {
	if len(orderIDs) == 0 {
		return []*entity.Ticket{}, nil
	}

	query := `
		SELECT id, flight_id, order_id, "row", seat
		FROM tickets
		WHERE order_id = ANY($1)
		ORDER BY order_id, "row", seat
	`

	rows, err := r.db.Query(ctx, query, orderIDs)
	if err != nil {
		r.log.Error("Failed to find tickets by orders",
			zap.Error(err),
			zap.Int64s("order_ids", orderIDs),
		)
		return nil, fmt.Errorf("find tickets by orders: %w", err)
	}
	defer rows.Close()

	tickets := []*entity.Ticket{}
	for rows.Next() {
		var ticket entity.Ticket
		if err := rows.Scan(&ticket.ID, &ticket.FlightID, &ticket.OrderID, &ticket.Row, &ticket.Seat); err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}

	return tickets, nil
}
