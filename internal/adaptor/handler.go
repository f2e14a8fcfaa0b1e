package adaptor

import (
	"airport-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	AirplaneType *AirplaneTypeHandler
	Crew         *CrewHandler
	Airport      *AirportHandler
	Route        *RouteHandler
	Airplane     *AirplaneHandler
	Flight       *FlightHandler
	Order        *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		AirplaneType: NewAirplaneTypeHandler(service.AirplaneType, log),
		Crew:         NewCrewHandler(service.Crew, log),
		Airport:      NewAirportHandler(service.Airport, log),
		Route:        NewRouteHandler(service.Route, log),
		Airplane:     NewAirplaneHandler(service.Airplane, log),
		Flight:       NewFlightHandler(service.Flight, log),
		Order:        NewOrderHandler(service.Order, service.Ticket, log),
	}
}
