package entity

type Route struct {
	Base
	SourceID      int64 `db:"source_id"`
	DestinationID int64 `db:"destination_id"`
	Distance      int   `db:"distance"`
}

// RouteDetails is a route joined with both of its airports.
type RouteDetails struct {
	Route
	Source      Airport
	Destination Airport
}
