package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeValidationError_Message(t *testing.T) {
	err := &RangeValidationError{Field: "seat", Value: 7, Min: 1, Max: 6, Limit: "seats_in_row", TicketIndex: NoTicket}

	assert.Equal(t, "seat number must be in available range: (1, seats_in_row): (1, 6)", err.Error())
	assert.Equal(t, map[string]string{"seat": err.Error()}, err.Fields())
}

func TestAtTicket(t *testing.T) {
	t.Run("range error through wrapping", func(t *testing.T) {
		base := &RangeValidationError{Field: "row", Min: 1, Max: 10, Limit: "rows", TicketIndex: NoTicket}
		wrapped := fmt.Errorf("book ticket: %w", base)

		err := AtTicket(wrapped, 2)

		var rangeErr *RangeValidationError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, 2, rangeErr.TicketIndex)
		assert.Contains(t, rangeErr.Fields(), "tickets[2].row")
		assert.Equal(t, NoTicket, base.TicketIndex, "the original error is not mutated")
	})

	t.Run("conflict", func(t *testing.T) {
		err := AtTicket(NewConflict("ticket", "seat"), 0)

		var conflictErr *ConflictError
		require.True(t, errors.As(err, &conflictErr))
		assert.Equal(t, map[string]string{"tickets[0].seat": "ticket with this seat already exists"}, conflictErr.Fields())
	})

	t.Run("not found with a field", func(t *testing.T) {
		err := AtTicket(&NotFoundError{Resource: "flight", ID: int64(9), Field: "flight", TicketIndex: NoTicket}, 1)

		var notFoundErr *NotFoundError
		require.True(t, errors.As(err, &notFoundErr))
		assert.Equal(t, map[string]string{"tickets[1].flight": "flight 9 not found"}, notFoundErr.Fields())
	})

	t.Run("other errors pass through", func(t *testing.T) {
		plain := errors.New("db down")
		assert.Same(t, plain, AtTicket(plain, 3))
	})
}

func TestNotFoundError_NoField(t *testing.T) {
	err := NewNotFound("order", int64(3))

	assert.Equal(t, "order 3 not found", err.Error())
	assert.Nil(t, err.Fields())
}
