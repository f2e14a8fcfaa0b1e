package usecase

import (
	"airport-booking/internal/apperror"
	"airport-booking/internal/data/entity"
)

// ValidateTicket checks that row and seat fall inside the airplane grid.
// The row is checked first and only the first violation is reported.
func ValidateTicket(row, seat int, capacity entity.SeatCapacity) error {
	if row < 1 || row > capacity.Rows {
		return &apperror.RangeValidationError{
			Field:       "row",
			Value:       row,
			Min:         1,
			Max:         capacity.Rows,
			Limit:       "rows",
			TicketIndex: apperror.NoTicket,
		}
	}

	if seat < 1 || seat > capacity.SeatsInRow {
		return &apperror.RangeValidationError{
			Field:       "seat",
			Value:       seat,
			Min:         1,
			Max:         capacity.SeatsInRow,
			Limit:       "seats_in_row",
			TicketIndex: apperror.NoTicket,
		}
	}

	return nil
}
