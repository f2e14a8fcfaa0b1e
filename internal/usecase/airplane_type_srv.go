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

const airplaneTypesCacheKey = "catalog:airplane_types"

type AirplaneTypeService interface {
	ListAirplaneTypes(ctx context.Context) ([]response.AirplaneTypeResponse, error)
	GetAirplaneType(ctx context.Context, id int64) (*response.AirplaneTypeResponse, error)
	CreateAirplaneType(ctx context.Context, req *request.AirplaneTypeRequest) (*response.AirplaneTypeResponse, error)
	UpdateAirplaneType(ctx context.Context, id int64, req *request.AirplaneTypeRequest) (*response.AirplaneTypeResponse, error)
	DeleteAirplaneType(ctx context.Context, id int64) error
}

type airplaneTypeService struct {
	repo  *repository.Repository
	cache CatalogCache
	log   *zap.Logger
}

func NewAirplaneTypeService(repo *repository.Repository, infra Infra, log *zap.Logger) AirplaneTypeService {
	infra = infra.withDefaults()
	return &airplaneTypeService{
		repo:  repo,
		cache: infra.Cache,
		log:   log.With(zap.String("service", "airplane_type")),
	}
}

func (s *airplaneTypeService) ListAirplaneTypes(ctx context.Context) ([]response.AirplaneTypeResponse, error) {
	return cachedList(ctx, s.cache, s.log, airplaneTypesCacheKey, func() ([]response.AirplaneTypeResponse, error) {
		airplaneTypes, err := s.repo.AirplaneType.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("get airplane types: %w", err)
		}

		resp := make([]response.AirplaneTypeResponse, len(airplaneTypes))
		for i, airplaneType := range airplaneTypes {
			resp[i] = response.AirplaneTypeToResponse(airplaneType)
		}
		return resp, nil
	})
}

func (s *airplaneTypeService) GetAirplaneType(ctx context.Context, id int64) (*response.AirplaneTypeResponse, error) {
	airplaneType, err := s.repo.AirplaneType.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get airplane type %d: %w", id, err)
	}
	if airplaneType == nil {
		return nil, apperror.NewNotFound("airplane type", id)
	}

	resp := response.AirplaneTypeToResponse(airplaneType)
	return &resp, nil
}

func (s *airplaneTypeService) CreateAirplaneType(ctx context.Context, req *request.AirplaneTypeRequest) (*response.AirplaneTypeResponse, error) {
	airplaneType := &entity.AirplaneType{Name: req.Name}
	if err := s.repo.AirplaneType.Create(ctx, airplaneType); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, airplaneTypesCacheKey)

	s.log.Info("Airplane type created", zap.Int64("airplane_type_id", airplaneType.ID))

	resp := response.AirplaneTypeToResponse(airplaneType)
	return &resp, nil
}

func (s *airplaneTypeService) UpdateAirplaneType(ctx context.Context, id int64, req *request.AirplaneTypeRequest) (*response.AirplaneTypeResponse, error) {
	airplaneType := &entity.AirplaneType{Base: entity.Base{ID: id}, Name: req.Name}
	if err := s.repo.AirplaneType.Update(ctx, airplaneType); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, airplaneTypesCacheKey)

	resp := response.AirplaneTypeToResponse(airplaneType)
	return &resp, nil
}

func (s *airplaneTypeService) DeleteAirplaneType(ctx context.Context, id int64) error {
	if err := s.repo.AirplaneType.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.log, airplaneTypesCacheKey)
	return nil
}
