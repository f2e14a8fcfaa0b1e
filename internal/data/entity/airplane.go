package entity

type Airplane struct {
	Base
	Name           string `db:"name"`
	Rows           int    `db:"rows"`
	SeatsInRow     int    `db:"seats_in_row"`
	AirplaneTypeID int64  `db:"airplane_type_id"`
}

func (a *Airplane) AllSeats() int {
	return a.Rows * a.SeatsInRow
}

// AirplaneDetails is an airplane joined with its type name.
type AirplaneDetails struct {
	Airplane
	TypeName string `db:"type_name"`
}
