package response

import "airport-booking/internal/data/entity"

type AirplaneTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CrewResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type CrewListResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

type AirportResponse struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	City *string `json:"city"`
}

// RouteResponse references airports by id; used for writes and detail.
type RouteResponse struct {
	ID          int64 `json:"id"`
	Source      int64 `json:"source"`
	Destination int64 `json:"destination"`
	Distance    int   `json:"distance"`
}

// RouteListResponse nests both airports.
type RouteListResponse struct {
	ID          int64           `json:"id"`
	Source      AirportResponse `json:"source"`
	Destination AirportResponse `json:"destination"`
	Distance    int             `json:"distance"`
}

type AirplaneResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType int64  `json:"airplane_type"`
}

type AirplaneListResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	AirplaneType string `json:"airplane_type"`
	AllSeats     int    `json:"all_seats"`
}

type AirplaneDetailResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	AirplaneType string `json:"airplane_type"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AllSeats     int    `json:"all_seats"`
}

func AirplaneTypeToResponse(airplaneType *entity.AirplaneType) AirplaneTypeResponse {
	return AirplaneTypeResponse{
		ID:   airplaneType.ID,
		Name: airplaneType.Name,
	}
}

func CrewToResponse(crew *entity.Crew) CrewResponse {
	return CrewResponse{
		ID:        crew.ID,
		FirstName: crew.FirstName,
		LastName:  crew.LastName,
	}
}

func CrewToListResponse(crew *entity.Crew) CrewListResponse {
	return CrewListResponse{
		ID:       crew.ID,
		FullName: crew.FullName(),
	}
}

func AirportToResponse(airport *entity.Airport) AirportResponse {
	return AirportResponse{
		ID:   airport.ID,
		Name: airport.Name,
		City: airport.City,
	}
}

func RouteToResponse(route *entity.Route) RouteResponse {
	return RouteResponse{
		ID:          route.ID,
		Source:      route.SourceID,
		Destination: route.DestinationID,
		Distance:    route.Distance,
	}
}

func RouteToListResponse(route *entity.RouteDetails) RouteListResponse {
	return RouteListResponse{
		ID:          route.ID,
		Source:      AirportToResponse(&route.Source),
		Destination: AirportToResponse(&route.Destination),
		Distance:    route.Distance,
	}
}

func AirplaneToResponse(airplane *entity.Airplane) AirplaneResponse {
	return AirplaneResponse{
		ID:           airplane.ID,
		Name:         airplane.Name,
		Rows:         airplane.Rows,
		SeatsInRow:   airplane.SeatsInRow,
		AirplaneType: airplane.AirplaneTypeID,
	}
}

func AirplaneToListResponse(airplane *entity.AirplaneDetails) AirplaneListResponse {
	return AirplaneListResponse{
		ID:           airplane.ID,
		Name:         airplane.Name,
		AirplaneType: airplane.TypeName,
		AllSeats:     airplane.AllSeats(),
	}
}

func AirplaneToDetailResponse(airplane *entity.AirplaneDetails) AirplaneDetailResponse {
	return AirplaneDetailResponse{
		ID:           airplane.ID,
		Name:         airplane.Name,
		AirplaneType: airplane.TypeName,
		Rows:         airplane.Rows,
		SeatsInRow:   airplane.SeatsInRow,
		AllSeats:     airplane.AllSeats(),
	}
}
