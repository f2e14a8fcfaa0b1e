package repository

import (
	"context"
	"errors"
	"fmt"

	"airport-booking/internal/apperror"
	"airport-booking/internal/data/entity"
	"airport-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CrewRepository interface {
	Create(ctx context.Context, crew *entity.Crew) error
	FindByID(ctx context.Context, id int64) (*entity.Crew, error)
	FindAll(ctx context.Context) ([]*entity.Crew, error)
	Update(ctx context.Context, crew *entity.Crew) error
	Delete(ctx context.Context, id int64) error
}

type crewRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewCrewRepository(db database.Querier, log *zap.Logger) CrewRepository {
	return &crewRepository{
		db:  db,
		log: log.With(zap.String("repository", "crew")),
	}
}

func (r *crewRepository) Create(ctx context.Context, crew *entity.Crew) error {
	query := `INSERT INTO crews (first_name, last_name) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRow(ctx, query, crew.FirstName, crew.LastName).Scan(&crew.ID)
	if err != nil {
		r.log.Error("Failed to create crew",
			zap.Error(err),
			zap.String("first_name", crew.FirstName),
		)
		return fmt.Errorf("create crew %s: %w", crew.FirstName, err)
	}

	return nil
}

func (r *crewRepository) FindByID(ctx context.Context, id int64) (*entity.Crew, error) {
	query := `SELECT id, first_name, last_name FROM crews WHERE id = $1`

	var crew entity.Crew
	err := r.db.QueryRow(ctx, query, id).Scan(&crew.ID, &crew.FirstName, &crew.LastName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find crew by ID",
			zap.Error(err),
			zap.Int64("crew_id", id),
		)
		return nil, fmt.Errorf("find crew by ID %d: %w", id, err)
	}

	return &crew, nil
}

func (r *crewRepository) FindAll(ctx context.Context) ([]*entity.Crew, error) {
	query := `SELECT id, first_name, last_name FROM crews ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all crews", zap.Error(err))
		return nil, fmt.Errorf("find all crews: %w", err)
	}
	defer rows.Close()

	crews := []*entity.Crew{}
	for rows.Next() {
		var crew entity.Crew
		if err := rows.Scan(&crew.ID, &crew.FirstName, &crew.LastName); err != nil {
			r.log.Error("Failed to scan crew row", zap.Error(err))
			return nil, fmt.Errorf("scan crew row: %w", err)
		}
		crews = append(crews, &crew)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate crew rows: %w", err)
	}

	return crews, nil
}

func (r *crewRepository) Update(ctx context.Context, crew *entity.Crew) error {
	query := `UPDATE crews SET first_name = $2, last_name = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, crew.ID, crew.FirstName, crew.LastName)
	if err != nil {
		r.log.Error("Failed to update crew",
			zap.Error(err),
			zap.Int64("crew_id", crew.ID),
		)
		return fmt.Errorf("update crew %d: %w", crew.ID, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("crew", crew.ID)
	}

	return nil
}

func (r *crewRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM crews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete crew",
			zap.Error(err),
			zap.Int64("crew_id", id),
		)
		return fmt.Errorf("delete crew %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("crew", id)
	}

	r.log.Info("Crew deleted", zap.Int64("crew_id", id))
	return nil
}
