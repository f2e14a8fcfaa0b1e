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

type AirplaneTypeRepository interface {
	Create(ctx context.Context, airplaneType *entity.AirplaneType) error
	FindByID(ctx context.Context, id int64) (*entity.AirplaneType, error)
	FindAll(ctx context.Context) ([]*entity.AirplaneType, error)
	Update(ctx context.Context, airplaneType *entity.AirplaneType) error
	Delete(ctx context.Context, id int64) error
}

type airplaneTypeRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewAirplaneTypeRepository(db database.Querier, log *zap.Logger) AirplaneTypeRepository {
	return &airplaneTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "airplane_type")),
	}
}

func (r *airplaneTypeRepository) Create(ctx context.Context, airplaneType *entity.AirplaneType) error {
	query := `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`

	err := r.db.QueryRow(ctx, query, airplaneType.Name).Scan(&airplaneType.ID)
	if err != nil {
		r.log.Error("Failed to create airplane type",
			zap.Error(err),
			zap.String("name", airplaneType.Name),
		)
		return fmt.Errorf("create airplane type %s: %w", airplaneType.Name, err)
	}

	return nil
}

func (r *airplaneTypeRepository) FindByID(ctx context.Context, id int64) (*entity.AirplaneType, error) {
	query := `SELECT id, name FROM airplane_types WHERE id = $1`

	var airplaneType entity.AirplaneType
	err := r.db.QueryRow(ctx, query, id).Scan(&airplaneType.ID, &airplaneType.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find airplane type by ID",
			zap.Error(err),
			zap.Int64("airplane_type_id", id),
		)
		return nil, fmt.Errorf("find airplane type by ID %d: %w", id, err)
	}

	return &airplaneType, nil
}

func (r *airplaneTypeRepository) FindAll(ctx context.Context) ([]*entity.AirplaneType, error) {
	query := `SELECT id, name FROM airplane_types ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all airplane types", zap.Error(err))
		return nil, fmt.Errorf("find all airplane types: %w", err)
	}
	defer rows.Close()

	airplaneTypes := []*entity.AirplaneType{}
	for rows.Next() {
		var airplaneType entity.AirplaneType
		if err := rows.Scan(&airplaneType.ID, &airplaneType.Name); err != nil {
			r.log.Error("Failed to scan airplane type row", zap.Error(err))
			return nil, fmt.Errorf("scan airplane type row: %w", err)
		}
		airplaneTypes = append(airplaneTypes, &airplaneType)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate airplane type rows: %w", err)
	}

	return airplaneTypes, nil
}

func (r *airplaneTypeRepository) Update(ctx context.Context, airplaneType *entity.AirplaneType) error {
	query := `UPDATE airplane_types SET name = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, airplaneType.ID, airplaneType.Name)
	if err != nil {
		r.log.Error("Failed to update airplane type",
			zap.Error(err),
			zap.Int64("airplane_type_id", airplaneType.ID),
		)
		return fmt.Errorf("update airplane type %d: %w", airplaneType.ID, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("airplane type", airplaneType.ID)
	}

	return nil
}

func (r *airplaneTypeRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM airplane_types WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete airplane type",
			zap.Error(err),
			zap.Int64("airplane_type_id", id),
		)
		return fmt.Errorf("delete airplane type %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("airplane type", id)
	}

	r.log.Info("Airplane type deleted", zap.Int64("airplane_type_id", id))
	return nil
}
