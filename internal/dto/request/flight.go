package request

import "time"

type FlightRequest struct {
	Route         int64     `json:"route" validate:"required,gt=0"`
	Airplane      int64     `json:"airplane" validate:"required,gt=0"`
	Crew          int64     `json:"crew" validate:"required,gt=0"`
	DepartureTime time.Time `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time `json:"arrival_time" validate:"required,gtfield=DepartureTime"`
}

// FlightFilter holds the raw flight search query parameters.
// List values are comma separated.
type FlightFilter struct {
	Route               string
	City                string
	ArrivalPlace        string
	DestinationPlace    string
	DepartureTimeAfter  string
	DepartureTimeBefore string
	ArrivalTimeAfter    string
	ArrivalTimeBefore   string
}
