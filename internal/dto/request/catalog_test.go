package request

import (
	"math"
	"testing"

	"airport-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestAirplaneRequest_GridBounds(t *testing.T) {
	tests := []struct {
		name       string
		rows       int
		seatsInRow int
		wantFields []string
	}{
		{name: "largest grid", rows: 1000, seatsInRow: 1000},
		{name: "rows too large", rows: 50000, seatsInRow: 6, wantFields: []string{"rows"}},
		{name: "both too large", rows: 50000, seatsInRow: 50000, wantFields: []string{"rows", "seats_in_row"}},
		{name: "rows beyond int4", rows: math.MaxInt32 + 1, seatsInRow: 6, wantFields: []string{"rows"}},
		{name: "zero seats", rows: 10, seatsInRow: 0, wantFields: []string{"seats_in_row"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := utils.ValidateStruct(&AirplaneRequest{
				Name:         "UR-PSA",
				Rows:         tt.rows,
				SeatsInRow:   tt.seatsInRow,
				AirplaneType: 1,
			})

			if len(tt.wantFields) == 0 {
				assert.Empty(t, errs)
				return
			}
			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestAirplaneRequest_BoundMessage(t *testing.T) {
	errs := utils.ValidateStruct(&AirplaneRequest{Name: "UR-PSA", Rows: 1001, SeatsInRow: 6, AirplaneType: 1})

	assert.Equal(t, "Must be at most 1000", errs["rows"])
}
