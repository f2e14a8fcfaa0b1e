package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"airport-booking/internal/apperror"
	"airport-booking/internal/data/entity"
	"airport-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// FlightFilter narrows a flight search. Dimensions are ANDed, values inside
// one list are ORed. Zero values leave a dimension unrestricted.
type FlightFilter struct {
	RouteID           *int64
	Cities            []string
	ArrivalPlaces     []string
	DestinationPlaces []string
	DepartureAfter    *time.Time
	DepartureBefore   *time.Time
	ArrivalAfter      *time.Time
	ArrivalBefore     *time.Time
}

type FlightRepository interface {
	Create(ctx context.Context, flight *entity.Flight) error
	Update(ctx context.Context, flight *entity.Flight) error
	Delete(ctx context.Context, id int64) error

	FindDetailByID(ctx context.Context, id int64) (*entity.FlightDetails, error)
	FindDetailsByIDs(ctx context.Context, ids []int64) ([]*entity.FlightDetails, error)
	Search(ctx context.Context, filter FlightFilter) ([]*entity.FlightDetails, error)

	FindTakenSeats(ctx context.Context, flightID int64) ([]entity.TakenSeat, error)
	FindCapacity(ctx context.Context, flightID int64) (*entity.SeatCapacity, error)
}

type flightRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewFlightRepository(db database.Querier, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

// seats_available is derived from the ticket count on every read.
const flightSelect = `
	SELECT f.id, f.route_id, f.airplane_id, f.crew_id, f.departure_time, f.arrival_time,
	       r.id, r.source_id, r.destination_id, r.distance,
	       src.id, src.name, src.city,
	       dst.id, dst.name, dst.city,
	       a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id, ty.name,
	       c.id, c.first_name, c.last_name,
	       a.rows::bigint * a.seats_in_row - COUNT(t.id) AS seats_available
	FROM flights f
	JOIN routes r ON r.id = f.route_id
	JOIN airports src ON src.id = r.source_id
	JOIN airports dst ON dst.id = r.destination_id
	JOIN airplanes a ON a.id = f.airplane_id
	JOIN airplane_types ty ON ty.id = a.airplane_type_id
	JOIN crews c ON c.id = f.crew_id
	LEFT JOIN tickets t ON t.flight_id = f.id
`

const flightGroupBy = `
	GROUP BY f.id, r.id, src.id, dst.id, a.id, ty.id, c.id
	ORDER BY f.departure_time, f.id
`

func scanFlight(row pgx.Row, flight *entity.FlightDetails) error {
	return row.Scan(
		&flight.ID,
		&flight.RouteID,
		&flight.AirplaneID,
		&flight.CrewID,
		&flight.DepartureTime,
		&flight.ArrivalTime,
		&flight.Route.ID,
		&flight.Route.SourceID,
		&flight.Route.DestinationID,
		&flight.Route.Distance,
		&flight.Route.Source.ID,
		&flight.Route.Source.Name,
		&flight.Route.Source.City,
		&flight.Route.Destination.ID,
		&flight.Route.Destination.Name,
		&flight.Route.Destination.City,
		&flight.Airplane.ID,
		&flight.Airplane.Name,
		&flight.Airplane.Rows,
		&flight.Airplane.SeatsInRow,
		&flight.Airplane.AirplaneTypeID,
		&flight.Airplane.TypeName,
		&flight.Crew.ID,
		&flight.Crew.FirstName,
		&flight.Crew.LastName,
		&flight.SeatsAvailable,
	)
}

// buildFlightFilter renders filter as a WHERE clause with positional
// arguments. It returns an empty clause when nothing is restricted.
func buildFlightFilter(filter FlightFilter) (string, []any) {
	var conditions []string
	var args []any

	next := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.RouteID != nil {
		conditions = append(conditions, "f.route_id = "+next(*filter.RouteID))
	}
	if len(filter.Cities) > 0 {
		p := next(filter.Cities)
		conditions = append(conditions, fmt.Sprintf("(src.city = ANY(%s) OR dst.city = ANY(%s))", p, p))
	}
	if len(filter.ArrivalPlaces) > 0 {
		conditions = append(conditions, fmt.Sprintf("src.name = ANY(%s)", next(filter.ArrivalPlaces)))
	}
	if len(filter.DestinationPlaces) > 0 {
		conditions = append(conditions, fmt.Sprintf("dst.name = ANY(%s)", next(filter.DestinationPlaces)))
	}
	if filter.DepartureAfter != nil {
		conditions = append(conditions, "f.departure_time >= "+next(*filter.DepartureAfter))
	}
	if filter.DepartureBefore != nil {
		conditions = append(conditions, "f.departure_time <= "+next(*filter.DepartureBefore))
	}
	if filter.ArrivalAfter != nil {
		conditions = append(conditions, "f.arrival_time >= "+next(*filter.ArrivalAfter))
	}
	if filter.ArrivalBefore != nil {
		conditions = append(conditions, "f.arrival_time <= "+next(*filter.ArrivalBefore))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *flightRepository) query(ctx context.Context, where string, args ...any) ([]*entity.FlightDetails, error) {
	rows, err := r.db.Query(ctx, flightSelect+where+flightGroupBy, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := []*entity.FlightDetails{}
	for rows.Next() {
		var flight entity.FlightDetails
		if err := scanFlight(rows, &flight); err != nil {
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, &flight)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flight rows: %w", err)
	}

	return flights, nil
}

func (r *flightRepository) Search(ctx context.Context, filter FlightFilter) ([]*entity.FlightDetails, error) {
	where, args := buildFlightFilter(filter)

	flights, err := r.query(ctx, where, args...)
	if err != nil {
		r.log.Error("Failed to search flights", zap.Error(err))
		return nil, fmt.Errorf("search flights: %w", err)
	}

	r.log.Debug("Flights found", zap.Int("count", len(flights)))
	return flights, nil
}

func (r *flightRepository) FindDetailByID(ctx context.Context, id int64) (*entity.FlightDetails, error) {
	flights, err := r.query(ctx, " WHERE f.id = $1", id)
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.Int64("flight_id", id),
		)
		return nil, fmt.Errorf("find flight by ID %d: %w", id, err)
	}

	if len(flights) == 0 {
		return nil, nil
	}
	return flights[0], nil
}

func (r *flightRepository) FindDetailsByIDs(ctx context.Context, ids []int64) ([]*entity.FlightDetails, error) {
	if len(ids) == 0 {
		return []*entity.FlightDetails{}, nil
	}

	flights, err := r.query(ctx, " WHERE f.id = ANY($1)", ids)
	if err != nil {
		r.log.Error("Failed to find flights by IDs",
			zap.Error(err),
			zap.Int64s("flight_ids", ids),
		)
		return nil, fmt.Errorf("find flights by IDs: %w", err)
	}

	return flights, nil
}

func (r *flightRepository) FindTakenSeats(ctx context.Context, flightID int64) ([]entity.TakenSeat, error) {
	query := `SELECT "row", seat FROM tickets WHERE flight_id = $1 ORDER BY "row", seat`

	rows, err := r.db.Query(ctx, query, flightID)
	if err != nil {
		r.log.Error("Failed to find taken seats",
			zap.Error(err),
			zap.Int64("flight_id", flightID),
		)
		return nil, fmt.Errorf("find taken seats for flight %d: %w", flightID, err)
	}
	defer rows.Close()

	seats := []entity.TakenSeat{}
	for rows.Next() {
		var seat entity.TakenSeat
		if err := rows.Scan(&seat.Row, &seat.Seat); err != nil {
			r.log.Error("Failed to scan taken seat row", zap.Error(err))
			return nil, fmt.Errorf("scan taken seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate taken seat rows: %w", err)
	}

	return seats, nil
}

// FindCapacity returns the seating grid of the airplane flying flightID,
// or nil when the flight does not exist.
func (r *flightRepository) FindCapacity(ctx context.Context, flightID int64) (*entity.SeatCapacity, error) {
	query := `
		SELECT a.rows, a.seats_in_row
		FROM flights f
		JOIN airplanes a ON a.id = f.airplane_id
		WHERE f.id = $1
	`

	var capacity entity.SeatCapacity
	err := r.db.QueryRow(ctx, query, flightID).Scan(&capacity.Rows, &capacity.SeatsInRow)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight capacity",
			zap.Error(err),
			zap.Int64("flight_id", flightID),
		)
		return nil, fmt.Errorf("find capacity for flight %d: %w", flightID, err)
	}

	return &capacity, nil
}

func (r *flightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	query := `
		INSERT INTO flights (route_id, airplane_id, crew_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		flight.RouteID,
		flight.AirplaneID,
		flight.CrewID,
		flight.DepartureTime,
		flight.ArrivalTime,
	).Scan(&flight.ID)

	if err != nil {
		if appErr := translateConstraint(err); appErr != nil {
			return appErr
		}
		r.log.Error("Failed to create flight",
			zap.Error(err),
			zap.Int64("route_id", flight.RouteID),
		)
		return fmt.Errorf("create flight: %w", err)
	}

	return nil
}

func (r *flightRepository) Update(ctx context.Context, flight *entity.Flight) error {
	query := `
		UPDATE flights
		SET route_id = $2, airplane_id = $3, crew_id = $4, departure_time = $5, arrival_time = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		flight.ID,
		flight.RouteID,
		flight.AirplaneID,
		flight.CrewID,
		flight.DepartureTime,
		flight.ArrivalTime,
	)
	if err != nil {
		if appErr := translateConstraint(err); appErr != nil {
			return appErr
		}
		r.log.Error("Failed to update flight",
			zap.Error(err),
			zap.Int64("flight_id", flight.ID),
		)
		return fmt.Errorf("update flight %d: %w", flight.ID, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("flight", flight.ID)
	}

	return nil
}

func (r *flightRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM flights WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete flight",
			zap.Error(err),
			zap.Int64("flight_id", id),
		)
		return fmt.Errorf("delete flight %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("flight", id)
	}

	r.log.Info("Flight deleted", zap.Int64("flight_id", id))
	return nil
}
