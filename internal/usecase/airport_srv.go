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

const airportsCacheKey = "catalog:airports"

type AirportService interface {
	// ListAirports lists airports located in any of cities, or all of them.
	ListAirports(ctx context.Context, cities []string) ([]response.AirportResponse, error)
	GetAirport(ctx context.Context, id int64) (*response.AirportResponse, error)
	CreateAirport(ctx context.Context, req *request.AirportRequest) (*response.AirportResponse, error)
	UpdateAirport(ctx context.Context, id int64, req *request.AirportRequest) (*response.AirportResponse, error)
	DeleteAirport(ctx context.Context, id int64) error
}

type airportService struct {
	repo  *repository.Repository
	cache CatalogCache
	log   *zap.Logger
}

func NewAirportService(repo *repository.Repository, infra Infra, log *zap.Logger) AirportService {
	infra = infra.withDefaults()
	return &airportService{
		repo:  repo,
		cache: infra.Cache,
		log:   log.With(zap.String("service", "airport")),
	}
}

func (s *airportService) ListAirports(ctx context.Context, cities []string) ([]response.AirportResponse, error) {
	load := func() ([]response.AirportResponse, error) {
		airports, err := s.repo.Airport.FindAll(ctx, cities)
		if err != nil {
			return nil, fmt.Errorf("get airports: %w", err)
		}

		resp := make([]response.AirportResponse, len(airports))
		for i, airport := range airports {
			resp[i] = response.AirportToResponse(airport)
		}
		return resp, nil
	}

	// only the unfiltered list is cached
	if len(cities) > 0 {
		return load()
	}
	return cachedList(ctx, s.cache, s.log, airportsCacheKey, load)
}

func (s *airportService) GetAirport(ctx context.Context, id int64) (*response.AirportResponse, error) {
	airport, err := s.repo.Airport.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get airport %d: %w", id, err)
	}
	if airport == nil {
		return nil, apperror.NewNotFound("airport", id)
	}

	resp := response.AirportToResponse(airport)
	return &resp, nil
}

func (s *airportService) CreateAirport(ctx context.Context, req *request.AirportRequest) (*response.AirportResponse, error) {
	airport := &entity.Airport{Name: req.Name, City: req.City}
	if err := s.repo.Airport.Create(ctx, airport); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, airportsCacheKey)

	s.log.Info("Airport created",
		zap.Int64("airport_id", airport.ID),
		zap.String("name", airport.Name),
	)

	resp := response.AirportToResponse(airport)
	return &resp, nil
}

func (s *airportService) UpdateAirport(ctx context.Context, id int64, req *request.AirportRequest) (*response.AirportResponse, error) {
	airport := &entity.Airport{Base: entity.Base{ID: id}, Name: req.Name, City: req.City}
	if err := s.repo.Airport.Update(ctx, airport); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, airportsCacheKey)

	resp := response.AirportToResponse(airport)
	return &resp, nil
}

func (s *airportService) DeleteAirport(ctx context.Context, id int64) error {
	if err := s.repo.Airport.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.log, airportsCacheKey)
	return nil
}
