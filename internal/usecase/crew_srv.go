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

type CrewService interface {
	ListCrew(ctx context.Context) ([]response.CrewListResponse, error)
	GetCrew(ctx context.Context, id int64) (*response.CrewResponse, error)
	CreateCrew(ctx context.Context, req *request.CrewRequest) (*response.CrewResponse, error)
	UpdateCrew(ctx context.Context, id int64, req *request.CrewRequest) (*response.CrewResponse, error)
	DeleteCrew(ctx context.Context, id int64) error
}

type crewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCrewService(repo *repository.Repository, log *zap.Logger) CrewService {
	return &crewService{
		repo: repo,
		log:  log.With(zap.String("service", "crew")),
	}
}

func (s *crewService) ListCrew(ctx context.Context) ([]response.CrewListResponse, error) {
	crews, err := s.repo.Crew.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get crew: %w", err)
	}

	resp := make([]response.CrewListResponse, len(crews))
	for i, crew := range crews {
		resp[i] = response.CrewToListResponse(crew)
	}
	return resp, nil
}

func (s *crewService) GetCrew(ctx context.Context, id int64) (*response.CrewResponse, error) {
	crew, err := s.repo.Crew.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get crew %d: %w", id, err)
	}
	if crew == nil {
		return nil, apperror.NewNotFound("crew", id)
	}

	resp := response.CrewToResponse(crew)
	return &resp, nil
}

func (s *crewService) CreateCrew(ctx context.Context, req *request.CrewRequest) (*response.CrewResponse, error) {
	crew := &entity.Crew{FirstName: req.FirstName, LastName: req.LastName}
	if err := s.repo.Crew.Create(ctx, crew); err != nil {
		return nil, err
	}

	s.log.Info("Crew created", zap.Int64("crew_id", crew.ID))

	resp := response.CrewToResponse(crew)
	return &resp, nil
}

func (s *crewService) UpdateCrew(ctx context.Context, id int64, req *request.CrewRequest) (*response.CrewResponse, error) {
	crew := &entity.Crew{Base: entity.Base{ID: id}, FirstName: req.FirstName, LastName: req.LastName}
	if err := s.repo.Crew.Update(ctx, crew); err != nil {
		return nil, err
	}

	resp := response.CrewToResponse(crew)
	return &resp, nil
}

func (s *crewService) DeleteCrew(ctx context.Context, id int64) error {
	return s.repo.Crew.Delete(ctx, id)
}
