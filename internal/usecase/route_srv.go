package usecase

import (
	"context"
	"fmt"

	"airport-booking/internal/apperror"
	"airport-booking/internal/data/entity"
	"airport-booking/internal/data/repository"
	"airport-booking/internal/dto/request"
	"airport-booking/internal/dto/response"

	"go.uber.org/zap"
)

type RouteService interface {
	ListRoutes(ctx context.Context) ([]response.RouteListResponse, error)
	GetRoute(ctx context.Context, id int64) (*response.RouteResponse, error)
	CreateRoute(ctx context.Context, req *request.RouteRequest) (*response.RouteResponse, error)
	UpdateRoute(ctx context.Context, id int64, req *request.RouteRequest) (*response.RouteResponse, error)
	DeleteRoute(ctx context.Context, id int64) error
}

type routeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRouteService(repo *repository.Repository, log *zap.Logger) RouteService {
	return &routeService{
		repo: repo,
		log:  log.With(zap.String("service", "route")),
	}
}

func (s *routeService) ListRoutes(ctx context.Context) ([]response.RouteListResponse, error) {
	routes, err := s.repo.Route.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get routes: %w", err)
	}

	resp := make([]response.RouteListResponse, len(routes))
	for i, route := range routes {
		resp[i] = response.RouteToListResponse(route)
	}
	return resp, nil
}

func (s *routeService) GetRoute(ctx context.Context, id int64) (*response.RouteResponse, error) {
	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get route %d: %w", id, err)
	}
	if route == nil {
		return nil, apperror.NewNotFound("route", id)
	}

	resp := response.RouteToResponse(&route.Route)
	return &resp, nil
}

func (s *routeService) CreateRoute(ctx context.Context, req *request.RouteRequest) (*response.RouteResponse, error) {
	route := routeFromRequest(req)
	if err := s.repo.Route.Create(ctx, route); err != nil {
		return nil, err
	}

	s.log.Info("Route created",
		zap.Int64("route_id", route.ID),
		zap.Int64("source_id", route.SourceID),
		zap.Int64("destination_id", route.DestinationID),
	)

	resp := response.RouteToResponse(route)
	return &resp, nil
}

func (s *routeService) UpdateRoute(ctx context.Context, id int64, req *request.RouteRequest) (*response.RouteResponse, error) {
	route := routeFromRequest(req)
	route.ID = id
	if err := s.repo.Route.Update(ctx, route); err != nil {
		return nil, err
	}

	resp := response.RouteToResponse(route)
	return &resp, nil
}

func (s *routeService) DeleteRoute(ctx context.Context, id int64) error {
	return s.repo.Route.Delete(ctx, id)
}

func routeFromRequest(req *request.RouteRequest) *entity.Route {
	return &entity.Route{
		SourceID:      req.Source,
		DestinationID: req.Destination,
		Distance:      req.Distance,
	}
}
