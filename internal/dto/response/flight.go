package response

import (
	"time"

	"airport-booking/internal/data/entity"
)

// FlightResponse references related entities by id; returned from writes.
type FlightResponse struct {
	ID            int64     `json:"id"`
	Route         int64     `json:"route"`
	Airplane      int64     `json:"airplane"`
	Crew          int64     `json:"crew"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

type FlightSummaryResponse struct {
	ID               int64                  `json:"id"`
	ArrivalPlace     string                 `json:"arrival_place"`
	DestinationPlace string                 `json:"destination_place"`
	Airplane         AirplaneDetailResponse `json:"airplane"`
	SeatsAvailable   int                    `json:"seats_available"`
	DepartureTime    time.Time              `json:"departure_time"`
	ArrivalTime      time.Time              `json:"arrival_time"`
	Crew             CrewListResponse       `json:"crew"`
}

type TakenSeatResponse struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type FlightDetailResponse struct {
	ID             int64                  `json:"id"`
	Route          RouteListResponse      `json:"route"`
	Airplane       AirplaneDetailResponse `json:"airplane"`
	SeatsAvailable int                    `json:"seats_available"`
	TakenSeats     []TakenSeatResponse    `json:"taken_seats"`
	DepartureTime  time.Time              `json:"departure_time"`
	ArrivalTime    time.Time              `json:"arrival_time"`
	Crew           CrewListResponse       `json:"crew"`
}

// FlightTicketResponse is the flight as shown inside an order listing.
type FlightTicketResponse struct {
	ID               int64     `json:"id"`
	ArrivalPlace     string    `json:"arrival_place"`
	DestinationPlace string    `json:"destination_place"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
}

func FlightToResponse(flight *entity.Flight) FlightResponse {
	return FlightResponse{
		ID:            flight.ID,
		Route:         flight.RouteID,
		Airplane:      flight.AirplaneID,
		Crew:          flight.CrewID,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
	}
}

func FlightToSummary(flight *entity.FlightDetails) FlightSummaryResponse {
	return FlightSummaryResponse{
		ID:               flight.ID,
		ArrivalPlace:     flight.Route.Source.Label(),
		DestinationPlace: flight.Route.Destination.Label(),
		Airplane:         AirplaneToDetailResponse(&flight.Airplane),
		SeatsAvailable:   flight.SeatsAvailable,
		DepartureTime:    flight.DepartureTime,
		ArrivalTime:      flight.ArrivalTime,
		Crew:             CrewToListResponse(&flight.Crew),
	}
}

func FlightToDetail(flight *entity.FlightDetails, taken []entity.TakenSeat) FlightDetailResponse {
	seats := make([]TakenSeatResponse, len(taken))
	for i, seat := range taken {
		seats[i] = TakenSeatResponse{Row: seat.Row, Seat: seat.Seat}
	}

	return FlightDetailResponse{
		ID:             flight.ID,
		Route:          RouteToListResponse(&flight.Route),
		Airplane:       AirplaneToDetailResponse(&flight.Airplane),
		SeatsAvailable: flight.SeatsAvailable,
		TakenSeats:     seats,
		DepartureTime:  flight.DepartureTime,
		ArrivalTime:    flight.ArrivalTime,
		Crew:           CrewToListResponse(&flight.Crew),
	}
}

func FlightToTicketView(flight *entity.FlightDetails) FlightTicketResponse {
	return FlightTicketResponse{
		ID:               flight.ID,
		ArrivalPlace:     flight.Route.Source.Label(),
		DestinationPlace: flight.Route.Destination.Label(),
		DepartureTime:    flight.DepartureTime,
		ArrivalTime:      flight.ArrivalTime,
	}
}
