// Package apperror holds the error kinds surfaced by the booking core.
// Handlers pick the HTTP status with errors.As / errors.Is; every kind can
// render itself as a field -> message map for the response body.
package apperror

import (
	"errors"
	"fmt"
)

// NoTicket marks an error not tied to a ticket of an order request.
const NoTicket = -1

// ErrEmptyOrder is returned for an order without tickets, before any storage call.
var ErrEmptyOrder = errors.New("order must contain at least one ticket")

// RangeValidationError reports a row or seat outside the airplane grid.
type RangeValidationError struct {
	Field       string // "row" or "seat"
	Value       int
	Min         int
	Max         int
	Limit       string // airplane attribute bounding the field: "rows" or "seats_in_row"
	TicketIndex int
}

func (e *RangeValidationError) Error() string {
	return fmt.Sprintf("%s number must be in available range: (%d, %s): (%d, %d)",
		e.Field, e.Min, e.Limit, e.Min, e.Max)
}

func (e *RangeValidationError) Fields() map[string]string {
	return map[string]string{ticketField(e.TicketIndex, e.Field): e.Error()}
}

// ConflictError reports a uniqueness violation, e.g. a seat that is already taken.
type ConflictError struct {
	Resource    string
	Field       string
	Message     string
	TicketIndex int
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s with this %s already exists", e.Resource, e.Field)
}

func (e *ConflictError) Fields() map[string]string {
	return map[string]string{ticketField(e.TicketIndex, e.Field): e.Error()}
}

// NotFoundError reports a referenced entity that does not resolve.
type NotFoundError struct {
	Resource    string
	ID          any
	Field       string
	TicketIndex int
}

func (e *NotFoundError) Error() string {
	if e.ID == nil {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

func (e *NotFoundError) Fields() map[string]string {
	if e.Field == "" {
		return nil
	}
	return map[string]string{ticketField(e.TicketIndex, e.Field): e.Error()}
}

// AuthorizationError reports an attempt to act on a resource owned by someone else.
type AuthorizationError struct {
	Resource string
	ID       any
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("not allowed to access %s %v", e.Resource, e.ID)
}

// ValidationError carries request level field errors that are not range checks.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func (e *ValidationError) Fields() map[string]string {
	return e.Errors
}

// NewNotFound builds a NotFoundError outside of a ticket context.
func NewNotFound(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id, TicketIndex: NoTicket}
}

// NewConflict builds a ConflictError outside of a ticket context.
func NewConflict(resource, field string) *ConflictError {
	return &ConflictError{Resource: resource, Field: field, TicketIndex: NoTicket}
}

// AtTicket attaches a ticket index to err if it is one of the ticket scoped kinds.
func AtTicket(err error, index int) error {
	var rangeErr *RangeValidationError
	var conflictErr *ConflictError
	var notFoundErr *NotFoundError
	switch {
	case errors.As(err, &rangeErr):
		cp := *rangeErr
		cp.TicketIndex = index
		return &cp
	case errors.As(err, &conflictErr):
		cp := *conflictErr
		cp.TicketIndex = index
		return &cp
	case errors.As(err, &notFoundErr):
		cp := *notFoundErr
		cp.TicketIndex = index
		return &cp
	}
	return err
}

func ticketField(index int, field string) string {
	if index == NoTicket {
		return field
	}
	return fmt.Sprintf("tickets[%d].%s", index, field)
}
