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

type AirplaneRepository interface {
	Create(ctx context.Context, airplane *entity.Airplane) error
	FindByID(ctx context.Context, id int64) (*entity.AirplaneDetails, error)
	FindAll(ctx context.Context) ([]*entity.AirplaneDetails, error)
	Update(ctx context.Context, airplane *entity.Airplane) error
	Delete(ctx context.Context, id int64) error
}

type airplaneRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewAirplaneRepository(db database.Querier, log *zap.Logger) AirplaneRepository {
	return &airplaneRepository{
		db:  db,
		log: log.With(zap.String("repository", "airplane")),
	}
}

const airplaneSelect = `
	SELECT a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id, t.name
	FROM airplanes a
	JOIN airplane_types t ON t.id = a.airplane_type_id
`

func scanAirplane(row pgx.Row, airplane *entity.AirplaneDetails) error {
	return row.Scan(
		&airplane.ID,
		&airplane.Name,
		&airplane.Rows,
		&airplane.SeatsInRow,
		&airplane.AirplaneTypeID,
		&airplane.TypeName,
	)
}

func (r *airplaneRepository) Create(ctx context.Context, airplane *entity.Airplane) error {
	query := `
		INSERT INTO airplanes (name, rows, seats_in_row, airplane_type_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		airplane.Name,
		airplane.Rows,
		airplane.SeatsInRow,
		airplane.AirplaneTypeID,
	).Scan(&airplane.ID)

	if err != nil {
		if appErr := translateConstraint(err); appErr != nil {
			return appErr
		}
		r.log.Error("Failed to create airplane",
			zap.Error(err),
			zap.String("name", airplane.Name),
		)
		return fmt.Errorf("create airplane %s: %w", airplane.Name, err)
	}

	return nil
}

func (r *airplaneRepository) FindByID(ctx context.Context, id int64) (*entity.AirplaneDetails, error) {
	var airplane entity.AirplaneDetails
	err := scanAirplane(r.db.QueryRow(ctx, airplaneSelect+" WHERE a.id = $1", id), &airplane)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find airplane by ID",
			zap.Error(err),
			zap.Int64("airplane_id", id),
		)
		return nil, fmt.Errorf("find airplane by ID %d: %w", id, err)
	}

	return &airplane, nil
}

func (r *airplaneRepository) FindAll(ctx context.Context) ([]*entity.AirplaneDetails, error) {
	rows, err := r.db.Query(ctx, airplaneSelect+" ORDER BY a.id")
	if err != nil {
		r.log.Error("Failed to find all airplanes", zap.Error(err))
		return nil, fmt.Errorf("find all airplanes: %w", err)
	}
	defer rows.Close()

	airplanes := []*entity.AirplaneDetails{}
	for rows.Next() {
		var airplane entity.AirplaneDetails
		if err := scanAirplane(rows, &airplane); err != nil {
			r.log.Error("Failed to scan airplane row", zap.Error(err))
			return nil, fmt.Errorf("scan airplane row: %w", err)
		}
		airplanes = append(airplanes, &airplane)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate airplane rows: %w", err)
	}

	return airplanes, nil
}

func (r *airplaneRepository) Update(ctx context.Context, airplane *entity.Airplane) error {
	query := `
		UPDATE airplanes
		SET name = $2, rows = $3, seats_in_row = $4, airplane_type_id = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		airplane.ID,
		airplane.Name,
		airplane.Rows,
		airplane.SeatsInRow,
		airplane.AirplaneTypeID,
	)
	if err != nil {
		if appErr := translateConstraint(err); appErr != nil {
			return appErr
		}
		r.log.Error("Failed to update airplane",
			zap.Error(err),
			zap.Int64("airplane_id", airplane.ID),
		)
		return fmt.Errorf("update airplane %d: %w", airplane.ID, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("airplane", airplane.ID)
	}

	return nil
}

func (r *airplaneRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM airplanes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete airplane",
			zap.Error(err),
			zap.Int64("airplane_id", id),
		)
		return fmt.Errorf("delete airplane %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("airplane", id)
	}

	r.log.Info("Airplane deleted", zap.Int64("airplane_id", id))
	return nil
}
