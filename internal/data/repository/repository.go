package repository

import (
	"context"
	"fmt"

	"airport-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	AirplaneType AirplaneTypeRepository
	Crew         CrewRepository
	Airport      AirportRepository
	Route        RouteRepository
	Airplane     AirplaneRepository
	Flight       FlightRepository
	Order        OrderRepository
	Ticket       TicketRepository

	Tx TxManager
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repos := newRepositories(db, log)
	repos.Tx = NewTxManager(db, log)
	return repos
}

// newRepositories builds every repository over q, which is either the pool
// or an open transaction.
func newRepositories(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(q, log),
		Session:      NewSessionRepository(q, log),
		AirplaneType: NewAirplaneTypeRepository(q, log),
		Crew:         NewCrewRepository(q, log),
		Airport:      NewAirportRepository(q, log),
		Route:        NewRouteRepository(q, log),
		Airplane:     NewAirplaneRepository(q, log),
		Flight:       NewFlightRepository(q, log),
		Order:        NewOrderRepository(q, log),
		Ticket:       NewTicketRepository(q, log),
	}
}

// TxManager runs fn against repositories bound to a single transaction.
// The transaction commits only when fn returns nil.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(repos *Repository) error) error
}

type txManager struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTxManager(db database.PgxIface, log *zap.Logger) TxManager {
	return &txManager{
		db:  db,
		log: log,
	}
}

func (m *txManager) WithinTx(ctx context.Context, fn func(repos *Repository) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		m.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}
	// no-op once committed
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(newRepositories(tx, m.log)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		m.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
