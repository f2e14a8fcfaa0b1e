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

type RouteRepository interface {
	Create(ctx context.Context, route *entity.Route) error
	FindByID(ctx context.Context, id int64) (*entity.RouteDetails, error)
	FindAll(ctx context.Context) ([]*entity.RouteDetails, error)
	Update(ctx context.Context, route *entity.Route) error
	Delete(ctx context.Context, id int64) error
}

type routeRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRouteRepository(db database.Querier, log *zap.Logger) RouteRepository {
	return &routeRepository{
		db:  db,
		log: log.With(zap.String("repository", "route")),
	}
}

const routeSelect = `
	SELECT r.id, r.source_id, r.destination_id, r.distance,
	       src.id, src.name, src.city,
	       dst.id, dst.name, dst.city
	FROM routes r
	JOIN airports src ON src.id = r.source_id
	JOIN airports dst ON dst.id = r.destination_id
`

func scanRoute(row pgx.Row, route *entity.RouteDetails) error {
	return row.Scan(
		&route.ID,
		&route.SourceID,
		&route.DestinationID,
		&route.Distance,
		&route.Source.ID,
		&route.Source.Name,
		&route.Source.City,
		&route.Destination.ID,
		&route.Destination.Name,
		&route.Destination.City,
	)
}

func (r *routeRepository) Create(ctx context.Context, route *entity.Route) error {
	query := `
		INSERT INTO routes (source_id, destination_id, distance)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, route.SourceID, route.DestinationID, route.Distance).Scan(&route.ID)
	if err != nil {
		if appErr := translateConstraint(err); appErr != nil {
			return appErr
		}
		r.log.Error("Failed to create route",
			zap.Error(err),
			zap.Int64("source_id", route.SourceID),
			zap.Int64("destination_id", route.DestinationID),
		)
		return fmt.Errorf("create route: %w", err)
	}

	return nil
}

func (r *routeRepository) FindByID(ctx context.Context, id int64) (*entity.RouteDetails, error) {
	var route entity.RouteDetails
	err := scanRoute(r.db.QueryRow(ctx, routeSelect+" WHERE r.id = $1", id), &route)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find route by ID",
			zap.Error(err),
			zap.Int64("route_id", id),
		)
		return nil, fmt.Errorf("find route by ID %d: %w", id, err)
	}

	return &route, nil
}

func (r *routeRepository) FindAll(ctx context.Context) ([]*entity.RouteDetails, error) {
	rows, err := r.db.Query(ctx, routeSelect+" ORDER BY r.id")
	if err != nil {
		r.log.Error("Failed to find all routes", zap.Error(err))
		return nil, fmt.Errorf("find all routes: %w", err)
	}
	defer rows.Close()

	routes := []*entity.RouteDetails{}
	for rows.Next() {
		var route entity.RouteDetails
		if err := scanRoute(rows, &route); err != nil {
			r.log.Error("Failed to scan route row", zap.Error(err))
			return nil, fmt.Errorf("scan route row: %w", err)
		}
		routes = append(routes, &route)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate route rows: %w", err)
	}

	return routes, nil
}

func (r *routeRepository) Update(ctx context.Context, route *entity.Route) error {
	query := `
		UPDATE routes
		SET source_id = $2, destination_id = $3, distance = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, route.ID, route.SourceID, route.DestinationID, route.Distance)
	if err != nil {
		if appErr := translateConstraint(err); appErr != nil {
			return appErr
		}
		r.log.Error("Failed to update route",
			zap.Error(err),
			zap.Int64("route_id", route.ID),
		)
		return fmt.Errorf("update route %d: %w", route.ID, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("route", route.ID)
	}

	return nil
}

func (r *routeRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM routes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete route",
			zap.Error(err),
			zap.Int64("route_id", id),
		)
		return fmt.Errorf("delete route %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("route", id)
	}

	r.log.Info("Route deleted", zap.Int64("route_id", id))
	return nil
}
