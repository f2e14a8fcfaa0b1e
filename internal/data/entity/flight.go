package entity

import "time"

type Flight struct {
	Base
	RouteID       int64     `db:"route_id"`
	AirplaneID    int64     `db:"airplane_id"`
	CrewID        int64     `db:"crew_id"`
	DepartureTime time.Time `db:"departure_time"`
	ArrivalTime   time.Time `db:"arrival_time"`
}

// FlightDetails is the search row: a flight joined with its route, airports,
// airplane and crew, plus the seat availability computed at query time.
type FlightDetails struct {
	Flight
	Route          RouteDetails
	Airplane       AirplaneDetails
	Crew           Crew
	SeatsAvailable int `db:"seats_available"`

	// TakenSeats is loaded only for detail views.
	TakenSeats []TakenSeat
}

// SeatCapacity is the seating grid of the airplane assigned to a flight.
type SeatCapacity struct {
	Rows       int
	SeatsInRow int
}

func (c SeatCapacity) Total() int {
	return c.Rows * c.SeatsInRow
}
