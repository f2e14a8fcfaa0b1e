package request

type AirplaneTypeRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

type CrewRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=64"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=64"`
}

type AirportRequest struct {
	Name string  `json:"name" validate:"required,max=64"`
	City *string `json:"city,omitempty" validate:"omitempty,max=64"`
}

type RouteRequest struct {
	Source      int64 `json:"source" validate:"required,gt=0"`
	Destination int64 `json:"destination" validate:"required,gt=0"`
	Distance    int   `json:"distance" validate:"required,gt=0"`
}

type AirplaneRequest struct {
	Name         string `json:"name" validate:"required,max=64"`
	Rows         int    `json:"rows" validate:"required,gt=0,lte=1000"`
	SeatsInRow   int    `json:"seats_in_row" validate:"required,gt=0,lte=1000"`
	AirplaneType int64  `json:"airplane_type" validate:"required,gt=0"`
}
