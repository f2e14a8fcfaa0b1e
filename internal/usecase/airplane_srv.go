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

type AirplaneService interface {
	ListAirplanes(ctx context.Context) ([]response.AirplaneListResponse, error)
	GetAirplane(ctx context.Context, id int64) (*response.AirplaneDetailResponse, error)
	CreateAirplane(ctx context.Context, req *request.AirplaneRequest) (*response.AirplaneResponse, error)
	UpdateAirplane(ctx context.Context, id int64, req *request.AirplaneRequest) (*response.AirplaneResponse, error)
	DeleteAirplane(ctx context.Context, id int64) error
}

type airplaneService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAirplaneService(repo *repository.Repository, log *zap.Logger) AirplaneService {
	return &airplaneService{
		repo: repo,
		log:  log.With(zap.String("service", "airplane")),
	}
}

func (s *airplaneService) ListAirplanes(ctx context.Context) ([]response.AirplaneListResponse, error) {
	airplanes, err := s.repo.Airplane.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get airplanes: %w", err)
	}

	resp := make([]response.AirplaneListResponse, len(airplanes))
	for i, airplane := range airplanes {
		resp[i] = response.AirplaneToListResponse(airplane)
	}
	return resp, nil
}

func (s *airplaneService) GetAirplane(ctx context.Context, id int64) (*response.AirplaneDetailResponse, error) {
	airplane, err := s.repo.Airplane.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get airplane %d: %w", id, err)
	}
	if airplane == nil {
		return nil, apperror.NewNotFound("airplane", id)
	}

	resp := response.AirplaneToDetailResponse(airplane)
	return &resp, nil
}

func (s *airplaneService) CreateAirplane(ctx context.Context, req *request.AirplaneRequest) (*response.AirplaneResponse, error) {
	airplane := airplaneFromRequest(req)
	if err := s.repo.Airplane.Create(ctx, airplane); err != nil {
		return nil, err
	}

	s.log.Info("Airplane created",
		zap.Int64("airplane_id", airplane.ID),
		zap.Int("all_seats", airplane.AllSeats()),
	)

	resp := response.AirplaneToResponse(airplane)
	return &resp, nil
}

func (s *airplaneService) UpdateAirplane(ctx context.Context, id int64, req *request.AirplaneRequest) (*response.AirplaneResponse, error) {
	airplane := airplaneFromRequest(req)
	airplane.ID = id
	if err := s.repo.Airplane.Update(ctx, airplane); err != nil {
		return nil, err
	}

	resp := response.AirplaneToResponse(airplane)
	return &resp, nil
}

func (s *airplaneService) DeleteAirplane(ctx context.Context, id int64) error {
	return s.repo.Airplane.Delete(ctx, id)
}

func airplaneFromRequest(req *request.AirplaneRequest) *entity.Airplane {
	return &entity.Airplane{
		Name:           req.Name,
		Rows:           req.Rows,
		SeatsInRow:     req.SeatsInRow,
		AirplaneTypeID: req.AirplaneType,
	}
}
