package database

import (
	"context"
	"fmt"
)

// Constraint names referenced by the repositories when translating errors.
const (
	ConstraintAirportName    = "airports_name_key"
	ConstraintTicketSeat     = "tickets_flight_row_seat_key"
	ConstraintRouteSource    = "routes_source_id_fkey"
	ConstraintRouteDest      = "routes_destination_id_fkey"
	ConstraintAirplaneType   = "airplanes_airplane_type_id_fkey"
	ConstraintFlightRoute    = "flights_route_id_fkey"
	ConstraintFlightAirplane = "flights_airplane_id_fkey"
	ConstraintFlightCrew     = "flights_crew_id_fkey"
	ConstraintTicketFlight   = "tickets_flight_id_fkey"
	ConstraintTicketOrder    = "tickets_order_id_fkey"
	ConstraintOrderUser      = "orders_user_id_fkey"
)

var schema = `
CREATE TABLE IF NOT EXISTS users (
	id         UUID PRIMARY KEY,
	email      VARCHAR(255) NOT NULL UNIQUE,
	role       VARCHAR(20) NOT NULL DEFAULT 'customer',
	is_active  BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS sessions (
	id         UUID PRIMARY KEY,
	user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	token      UUID NOT NULL UNIQUE,
	expires_at TIMESTAMPTZ NOT NULL,
	revoked_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS airplane_types (
	id   BIGSERIAL PRIMARY KEY,
	name VARCHAR(64) NOT NULL
);

CREATE TABLE IF NOT EXISTS crews (
	id         BIGSERIAL PRIMARY KEY,
	first_name VARCHAR(64) NOT NULL,
	last_name  VARCHAR(64)
);

CREATE TABLE IF NOT EXISTS airports (
	id   BIGSERIAL PRIMARY KEY,
	name VARCHAR(64) NOT NULL,
	city VARCHAR(64),
	CONSTRAINT airports_name_key UNIQUE (name)
);

CREATE TABLE IF NOT EXISTS routes (
	id             BIGSERIAL PRIMARY KEY,
	source_id      BIGINT NOT NULL,
	destination_id BIGINT NOT NULL,
	distance       INT NOT NULL CHECK (distance > 0),
	CONSTRAINT routes_source_id_fkey FOREIGN KEY (source_id) REFERENCES airports(id) ON DELETE CASCADE,
	CONSTRAINT routes_destination_id_fkey FOREIGN KEY (destination_id) REFERENCES airports(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS airplanes (
	id               BIGSERIAL PRIMARY KEY,
	name             VARCHAR(64) NOT NULL,
	rows             INT NOT NULL CHECK (rows > 0),
	seats_in_row     INT NOT NULL CHECK (seats_in_row > 0),
	airplane_type_id BIGINT NOT NULL,
	CONSTRAINT airplanes_airplane_type_id_fkey FOREIGN KEY (airplane_type_id) REFERENCES airplane_types(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS flights (
	id             BIGSERIAL PRIMARY KEY,
	route_id       BIGINT NOT NULL,
	airplane_id    BIGINT NOT NULL,
	crew_id        BIGINT NOT NULL,
	departure_time TIMESTAMPTZ NOT NULL,
	arrival_time   TIMESTAMPTZ NOT NULL,
	CONSTRAINT flights_route_id_fkey FOREIGN KEY (route_id) REFERENCES routes(id) ON DELETE CASCADE,
	CONSTRAINT flights_airplane_id_fkey FOREIGN KEY (airplane_id) REFERENCES airplanes(id) ON DELETE CASCADE,
	CONSTRAINT flights_crew_id_fkey FOREIGN KEY (crew_id) REFERENCES crews(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS orders (
	id         BIGSERIAL PRIMARY KEY,
	user_id    UUID NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT orders_user_id_fkey FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS tickets (
	id        BIGSERIAL PRIMARY KEY,
	flight_id BIGINT NOT NULL,
	order_id  BIGINT NOT NULL,
	"row"     INT NOT NULL,
	seat      INT NOT NULL,
	CONSTRAINT tickets_flight_id_fkey FOREIGN KEY (flight_id) REFERENCES flights(id) ON DELETE CASCADE,
	CONSTRAINT tickets_order_id_fkey FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
	CONSTRAINT tickets_flight_row_seat_key UNIQUE (flight_id, "row", seat)
);

CREATE INDEX IF NOT EXISTS idx_orders_user_created ON orders (user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_tickets_order ON tickets (order_id);
CREATE INDEX IF NOT EXISTS idx_flights_route ON flights (route_id);
`

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db Querier) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
