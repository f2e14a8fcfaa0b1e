package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"airport-booking/internal/apperror"
	"airport-booking/internal/data/entity"
	"airport-booking/internal/data/repository"

	"github.com/google/uuid"
)

// memStore is an in-memory booking store. Like the database it rejects a
// second ticket for the same (flight, row, seat); transactions are serialized
// and roll back on error.
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	capacity map[int64]entity.SeatCapacity
	orders   map[int64]*entity.Order
	tickets  []*entity.Ticket
}

var (
	_ repository.TxManager        = (*memTx)(nil)
	_ repository.OrderRepository  = (*memOrders)(nil)
	_ repository.TicketRepository = (*memTickets)(nil)
	_ repository.FlightRepository = (*memFlights)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		capacity: map[int64]entity.SeatCapacity{},
		orders:   map[int64]*entity.Order{},
	}
}

// addFlight registers a flight flown by a rows x seatsInRow airplane.
func (s *memStore) addFlight(id int64, rows, seatsInRow int) {
	s.capacity[id] = entity.SeatCapacity{Rows: rows, SeatsInRow: seatsInRow}
}

func (s *memStore) repository() *repository.Repository {
	return &repository.Repository{
		Order:  &memOrders{store: s},
		Ticket: &memTickets{store: s},
		Flight: &memFlights{store: s},
		Tx:     &memTx{store: s},
	}
}

func (s *memStore) ticketCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickets)
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// lock guards calls made outside of a transaction; inside one the store is
// already held by WithinTx.
func (s *memStore) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type memTx struct {
	store *memStore
}

func (t *memTx) WithinTx(ctx context.Context, fn func(repos *repository.Repository) error) error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	nextID := s.nextID
	orders := make(map[int64]*entity.Order, len(s.orders))
	for id, o := range s.orders {
		orders[id] = o
	}
	tickets := append([]*entity.Ticket(nil), s.tickets...)

	err := fn(&repository.Repository{
		Order:  &memOrders{store: s, inTx: true},
		Ticket: &memTickets{store: s, inTx: true},
		Flight: &memFlights{store: s, inTx: true},
	})
	if err != nil {
		s.nextID, s.orders, s.tickets = nextID, orders, tickets
	}
	return err
}

type memOrders struct {
	store *memStore
	inTx  bool
}

func (r *memOrders) Create(ctx context.Context, order *entity.Order) error {
	defer r.store.lock(r.inTx)()
	r.store.nextID++
	order.ID = r.store.nextID
	order.CreatedAt = time.Now().Add(time.Duration(order.ID) * time.Millisecond)
	stored := *order
	r.store.orders[order.ID] = &stored
	return nil
}

func (r *memOrders) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	defer r.store.lock(r.inTx)()
	order, ok := r.store.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *order
	return &cp, nil
}

func (r *memOrders) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	defer r.store.lock(r.inTx)()
	var owned []*entity.Order
	for _, order := range r.store.orders {
		if order.UserID == userID {
			cp := *order
			owned = append(owned, &cp)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.After(owned[j].CreatedAt) })

	if offset >= len(owned) {
		return []*entity.Order{}, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

func (r *memOrders) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	defer r.store.lock(r.inTx)()
	var total int64
	for _, order := range r.store.orders {
		if order.UserID == userID {
			total++
		}
	}
	return total, nil
}

func (r *memOrders) Delete(ctx context.Context, id int64) error {
	defer r.store.lock(r.inTx)()
	if _, ok := r.store.orders[id]; !ok {
		return apperror.NewNotFound("order", id)
	}
	delete(r.store.orders, id)

	kept := r.store.tickets[:0]
	for _, ticket := range r.store.tickets {
		if ticket.OrderID != id {
			kept = append(kept, ticket)
		}
	}
	r.store.tickets = kept
	return nil
}

type memTickets struct {
	store *memStore
	inTx  bool
}

func (r *memTickets) Create(ctx context.Context, ticket *entity.Ticket) error {
	defer r.store.lock(r.inTx)()
	if _, ok := r.store.capacity[ticket.FlightID]; !ok {
		return &apperror.NotFoundError{Resource: "flight", Field: "flight", TicketIndex: apperror.NoTicket}
	}
	for _, t := range r.store.tickets {
		if t.FlightID == ticket.FlightID && t.Row == ticket.Row && t.Seat == ticket.Seat {
			return &apperror.ConflictError{
				Resource:    "ticket",
				Field:       "seat",
				Message:     "seat is already taken on this flight",
				TicketIndex: apperror.NoTicket,
			}
		}
	}

	r.store.nextID++
	ticket.ID = r.store.nextID
	stored := *ticket
	r.store.tickets = append(r.store.tickets, &stored)
	return nil
}

func (r *memTickets) FindByOrderIDs(ctx context.Context, orderIDs []int64) ([]*entity.Ticket, error) {
	defer r.store.lock(r.inTx)()
	wanted := map[int64]bool{}
	for _, id := range orderIDs {
		wanted[id] = true
	}

	tickets := []*entity.Ticket{}
	for _, t := range r.store.tickets {
		if wanted[t.OrderID] {
			cp := *t
			tickets = append(tickets, &cp)
		}
	}
	sort.Slice(tickets, func(i, j int) bool {
		a, b := tickets[i], tickets[j]
		if a.OrderID != b.OrderID {
			return a.OrderID < b.OrderID
		}
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Seat < b.Seat
	})
	return tickets, nil
}

type memFlights struct {
	store *memStore
	inTx  bool
}

func (r *memFlights) Create(context.Context, *entity.Flight) error { return nil }
func (r *memFlights) Update(context.Context, *entity.Flight) error { return nil }
func (r *memFlights) Delete(context.Context, int64) error          { return nil }

func (r *memFlights) FindDetailByID(ctx context.Context, id int64) (*entity.FlightDetails, error) {
	flights, _ := r.FindDetailsByIDs(ctx, []int64{id})
	if len(flights) == 0 {
		return nil, nil
	}
	return flights[0], nil
}

func (r *memFlights) FindDetailsByIDs(ctx context.Context, ids []int64) ([]*entity.FlightDetails, error) {
	defer r.store.lock(r.inTx)()
	flights := []*entity.FlightDetails{}
	for _, id := range ids {
		capacity, ok := r.store.capacity[id]
		if !ok {
			continue
		}
		sold := 0
		for _, t := range r.store.tickets {
			if t.FlightID == id {
				sold++
			}
		}

		flight := &entity.FlightDetails{SeatsAvailable: capacity.Total() - sold}
		flight.ID = id
		flight.Airplane.Rows = capacity.Rows
		flight.Airplane.SeatsInRow = capacity.SeatsInRow
		flight.Route.Source.Name = "Boryspil"
		flight.Route.Destination.Name = "Heathrow"
		flights = append(flights, flight)
	}
	return flights, nil
}

func (r *memFlights) Search(ctx context.Context, filter repository.FlightFilter) ([]*entity.FlightDetails, error) {
	return nil, nil
}

func (r *memFlights) FindTakenSeats(ctx context.Context, flightID int64) ([]entity.TakenSeat, error) {
	defer r.store.lock(r.inTx)()
	taken := []entity.TakenSeat{}
	for _, t := range r.store.tickets {
		if t.FlightID == flightID {
			taken = append(taken, entity.TakenSeat{Row: t.Row, Seat: t.Seat})
		}
	}
	sort.Slice(taken, func(i, j int) bool {
		if taken[i].Row != taken[j].Row {
			return taken[i].Row < taken[j].Row
		}
		return taken[i].Seat < taken[j].Seat
	})
	return taken, nil
}

func (r *memFlights) FindCapacity(ctx context.Context, flightID int64) (*entity.SeatCapacity, error) {
	defer r.store.lock(r.inTx)()
	capacity, ok := r.store.capacity[flightID]
	if !ok {
		return nil, nil
	}
	return &capacity, nil
}
