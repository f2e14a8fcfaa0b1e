package repository

import (
	"airport-booking/internal/apperror"
	"airport-booking/pkg/database"
)

type reference struct {
	resource string
	field    string
}

var foreignKeys = map[string]reference{
	database.ConstraintRouteSource:    {"airport", "source"},
	database.ConstraintRouteDest:      {"airport", "destination"},
	database.ConstraintAirplaneType:   {"airplane type", "airplane_type"},
	database.ConstraintFlightRoute:    {"route", "route"},
	database.ConstraintFlightAirplane: {"airplane", "airplane"},
	database.ConstraintFlightCrew:     {"crew", "crew"},
	database.ConstraintTicketFlight:   {"flight", "flight"},
	database.ConstraintTicketOrder:    {"order", "order"},
	database.ConstraintOrderUser:      {"user", "user"},
}

// translateConstraint turns unique and foreign key violations into
// apperror kinds. It returns nil for any other error.
func translateConstraint(err error) error {
	constraint := database.ConstraintName(err)

	if database.IsUniqueViolation(err) {
		switch constraint {
		case database.ConstraintAirportName:
			return apperror.NewConflict("airport", "name")
		case database.ConstraintTicketSeat:
			return &apperror.ConflictError{
				Resource:    "ticket",
				Field:       "seat",
				Message:     "seat is already taken on this flight",
				TicketIndex: apperror.NoTicket,
			}
		}
		return apperror.NewConflict("record", constraint)
	}

	if database.IsForeignKeyViolation(err) {
		ref, ok := foreignKeys[constraint]
		if !ok {
			return nil
		}
		return &apperror.NotFoundError{
			Resource:    ref.resource,
			Field:       ref.field,
			TicketIndex: apperror.NoTicket,
		}
	}

	return nil
}
