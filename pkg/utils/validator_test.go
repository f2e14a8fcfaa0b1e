package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testTicket struct {
	Flight int64 `json:"flight" validate:"required,gt=0"`
}

type testOrder struct {
	Tickets []testTicket `json:"tickets" validate:"dive"`
}

type testFlight struct {
	DepartureTime time.Time `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time `json:"arrival_time" validate:"required,gtfield=DepartureTime"`
}

func TestValidateStruct_KeysByJSONPath(t *testing.T) {
	errs := ValidateStruct(&testOrder{Tickets: []testTicket{{Flight: 1}, {Flight: 0}}})

	assert.Equal(t, map[string]string{"tickets[1].flight": "This field is required"}, errs)
}

func TestValidateStruct_ArrivalAfterDeparture(t *testing.T) {
	departure := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	assert.Nil(t, ValidateStruct(testFlight{DepartureTime: departure, ArrivalTime: departure.Add(time.Hour)}))

	errs := ValidateStruct(testFlight{DepartureTime: departure, ArrivalTime: departure.Add(-time.Hour)})
	assert.Equal(t, "Must be after departure_time", errs["arrival_time"])
}
