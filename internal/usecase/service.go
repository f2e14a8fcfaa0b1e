package usecase

import (
	"airport-booking/internal/data/repository"
	"airport-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	AirplaneType AirplaneTypeService
	Crew         CrewService
	Airport      AirportService
	Route        RouteService
	Airplane     AirplaneService
	Flight       FlightService
	Order        OrderService
	Ticket       TicketService
}

func NewService(repo *repository.Repository, infra Infra, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		AirplaneType: NewAirplaneTypeService(repo, infra, log),
		Crew:         NewCrewService(repo, log),
		Airport:      NewAirportService(repo, infra, log),
		Route:        NewRouteService(repo, log),
		Airplane:     NewAirplaneService(repo, log),
		Flight:       NewFlightService(repo, log),
		Order:        NewOrderService(repo, infra, config.Orders, log),
		Ticket:       NewTicketService(repo, infra, log),
	}
}
