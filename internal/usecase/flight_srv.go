package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"airport-booking/internal/apperror"
	"airport-booking/internal/data/entity"
	"airport-booking/internal/data/repository"
	"airport-booking/internal/dto/request"
	"airport-booking/internal/dto/response"
	"airport-booking/pkg/utils"

	"go.uber.org/zap"
)

type FlightService interface {
	ListFlights(ctx context.Context, filter *request.FlightFilter) ([]response.FlightSummaryResponse, error)
	GetFlight(ctx context.Context, id int64) (*response.FlightDetailResponse, error)

	CreateFlight(ctx context.Context, req *request.FlightRequest) (*response.FlightResponse, error)
	UpdateFlight(ctx context.Context, id int64, req *request.FlightRequest) (*response.FlightResponse, error)
	DeleteFlight(ctx context.Context, id int64) error
}

type flightService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFlightService(repo *repository.Repository, log *zap.Logger) FlightService {
	return &flightService{
		repo: repo,
		log:  log.With(zap.String("service", "flight")),
	}
}

func (s *flightService) ListFlights(ctx context.Context, filter *request.FlightFilter) ([]response.FlightSummaryResponse, error) {
	criteria, err := parseFlightFilter(filter)
	if err != nil {
		return nil, err
	}

	flights, err := s.repo.Flight.Search(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}

	flightResponses := make([]response.FlightSummaryResponse, len(flights))
	for i, flight := range flights {
		flightResponses[i] = response.FlightToSummary(flight)
	}

	return flightResponses, nil
}

func (s *flightService) GetFlight(ctx context.Context, id int64) (*response.FlightDetailResponse, error) {
	flight, err := s.repo.Flight.FindDetailByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get flight %d: %w", id, err)
	}
	if flight == nil {
		return nil, apperror.NewNotFound("flight", id)
	}

	taken, err := s.repo.Flight.FindTakenSeats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get taken seats of flight %d: %w", id, err)
	}

	resp := response.FlightToDetail(flight, taken)
	return &resp, nil
}

func (s *flightService) CreateFlight(ctx context.Context, req *request.FlightRequest) (*response.FlightResponse, error) {
	flight := flightFromRequest(req)

	if err := s.repo.Flight.Create(ctx, flight); err != nil {
		return nil, err
	}

	s.log.Info("Flight created",
		zap.Int64("flight_id", flight.ID),
		zap.Int64("route_id", flight.RouteID),
		zap.Time("departure_time", flight.DepartureTime),
	)

	resp := response.FlightToResponse(flight)
	return &resp, nil
}

func (s *flightService) UpdateFlight(ctx context.Context, id int64, req *request.FlightRequest) (*response.FlightResponse, error) {
	flight := flightFromRequest(req)
	flight.ID = id

	if err := s.repo.Flight.Update(ctx, flight); err != nil {
		return nil, err
	}

	s.log.Info("Flight updated", zap.Int64("flight_id", id))

	resp := response.FlightToResponse(flight)
	return &resp, nil
}

func (s *flightService) DeleteFlight(ctx context.Context, id int64) error {
	return s.repo.Flight.Delete(ctx, id)
}

func flightFromRequest(req *request.FlightRequest) *entity.Flight {
	return &entity.Flight{
		RouteID:       req.Route,
		AirplaneID:    req.Airplane,
		CrewID:        req.Crew,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}
}

// parseFlightFilter turns raw query values into search criteria. Every
// malformed value is reported under its query parameter name.
func parseFlightFilter(filter *request.FlightFilter) (repository.FlightFilter, error) {
	var criteria repository.FlightFilter
	if filter == nil {
		return criteria, nil
	}

	errs := map[string]string{}

	if filter.Route != "" {
		routeID, err := strconv.ParseInt(filter.Route, 10, 64)
		if err != nil {
			errs["route"] = "Must be a route id"
		} else {
			criteria.RouteID = &routeID
		}
	}

	criteria.Cities = utils.ParseCSV(filter.City)
	criteria.ArrivalPlaces = utils.ParseCSV(filter.ArrivalPlace)
	criteria.DestinationPlaces = utils.ParseCSV(filter.DestinationPlace)

	bounds := []struct {
		param  string
		value  string
		target **time.Time
	}{
		{"departure_time_after", filter.DepartureTimeAfter, &criteria.DepartureAfter},
		{"departure_time_before", filter.DepartureTimeBefore, &criteria.DepartureBefore},
		{"arrival_time_after", filter.ArrivalTimeAfter, &criteria.ArrivalAfter},
		{"arrival_time_before", filter.ArrivalTimeBefore, &criteria.ArrivalBefore},
	}
	for _, b := range bounds {
		t, err := utils.ParseTimeBound(b.value)
		if err != nil {
			errs[b.param] = err.Error()
			continue
		}
		*b.target = t
	}

	if len(errs) > 0 {
		return repository.FlightFilter{}, &apperror.ValidationError{Errors: errs}
	}
	return criteria, nil
}
