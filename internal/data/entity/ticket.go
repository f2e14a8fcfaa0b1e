package entity

type Ticket struct {
	Base
	FlightID int64 `db:"flight_id"`
	OrderID  int64 `db:"order_id"`
	Row      int   `db:"row"`
	Seat     int   `db:"seat"`
}

// TicketDetails is a ticket joined with the flight it was sold on.
type TicketDetails struct {
	Ticket
	Flight FlightDetails
}

// TakenSeat is one (row, seat) pair sold on a flight.
type TakenSeat struct {
	Row  int `db:"row"`
	Seat int `db:"seat"`
}
