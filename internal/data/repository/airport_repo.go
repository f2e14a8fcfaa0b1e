package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"airport-booking/internal/apperror"
	"airport-booking/internal/data/entity"
	"airport-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AirportRepository interface {
	Create(ctx context.Context, airport *entity.Airport) error
	FindByID(ctx context.Context, id int64) (*entity.Airport, error)
	// FindAll lists airports, restricted to the given cities when any are set.
	FindAll(ctx context.Context, cities []string) ([]*entity.Airport, error)
	Update(ctx context.Context, airport *entity.Airport) error
	Delete(ctx context.Context, id int64) error
}

type airportRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewAirportRepository(db database.Querier, log *zap.Logger) AirportRepository {
	return &airportRepository{
		db:  db,
		log: log.With(zap.String("repository", "airport")),
	}
}

func (r *airportRepository) Create(ctx context.Context, airport *entity.Airport) error {
	query := `INSERT INTO airports (name, city) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRow(ctx, query, airport.Name, airport.City).Scan(&airport.ID)
	if err != nil {
		if appErr := translateConstraint(err); appErr != nil {
			return appErr
		}
		r.log.Error("Failed to create airport",
			zap.Error(err),
			zap.String("name", airport.Name),
		)
		return fmt.Errorf("create airport %s: %w", airport.Name, err)
	}

	return nil
}

func (r *airportRepository) FindByID(ctx context.Context, id int64) (*entity.Airport, error) {
	query := `SELECT id, name, city FROM airports WHERE id = $1`

	var airport entity.Airport
	err := r.db.QueryRow(ctx, query, id).Scan(&airport.ID, &airport.Name, &airport.City)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find airport by ID",
			zap.Error(err),
			zap.Int64("airport_id", id),
		)
		return nil, fmt.Errorf("find airport by ID %d: %w", id, err)
	}

	return &airport, nil
}

func (r *airportRepository) FindAll(ctx context.Context, cities []string) ([]*entity.Airport, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, name, city FROM airports`)

	args := []any{}
	if len(cities) > 0 {
		queryBuilder.WriteString(" WHERE city = ANY($1)")
		args = append(args, cities)
	}
	queryBuilder.WriteString(" ORDER BY id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all airports",
			zap.Error(err),
			zap.Strings("cities", cities),
		)
		return nil, fmt.Errorf("find all airports: %w", err)
	}
	defer rows.Close()

	airports := []*entity.Airport{}
	for rows.Next() {
		var airport entity.Airport
		if err := rows.Scan(&airport.ID, &airport.Name, &airport.City); err != nil {
			r.log.Error("Failed to scan airport row", zap.Error(err))
			return nil, fmt.Errorf("scan airport row: %w", err)
		}
		airports = append(airports, &airport)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate airport rows: %w", err)
	}

	return airports, nil
}

func (r *airportRepository) Update(ctx context.Context, airport *entity.Airport) error {
	query := `UPDATE airports SET name = $2, city = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, airport.ID, airport.Name, airport.City)
	if err != nil {
		if appErr := translateConstraint(err); appErr != nil {
			return appErr
		}
		r.log.Error("Failed to update airport",
			zap.Error(err),
			zap.Int64("airport_id", airport.ID),
		)
		return fmt.Errorf("update airport %d: %w", airport.ID, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("airport", airport.ID)
	}

	return nil
}

func (r *airportRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM airports WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete airport",
			zap.Error(err),
			zap.Int64("airport_id", id),
		)
		return fmt.Errorf("delete airport %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("airport", id)
	}

	r.log.Info("Airport deleted", zap.Int64("airport_id", id))
	return nil
}
