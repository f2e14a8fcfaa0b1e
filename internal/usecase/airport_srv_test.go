package usecase

import (
	"context"
	"testing"

	"airport-booking/internal/data/entity"
	"airport-booking/internal/data/repository"
	"airport-booking/internal/dto/request"
	"airport-booking/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListAirports_CacheHit(t *testing.T) {
	airports := &MockAirportRepository{}
	cache := &MockCatalogCache{}
	service := NewAirportService(&repository.Repository{Airport: airports}, Infra{Cache: cache}, zap.NewNop())

	cache.On("GetJSON", mock.Anything, airportsCacheKey, mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*[]response.AirportResponse)
			*dest = []response.AirportResponse{{ID: 1, Name: "Boryspil"}}
		}).
		Return(true, nil)

	resp, err := service.ListAirports(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, []response.AirportResponse{{ID: 1, Name: "Boryspil"}}, resp)
	airports.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}

func TestListAirports_CacheMissStores(t *testing.T) {
	airports := &MockAirportRepository{}
	cache := &MockCatalogCache{}
	service := NewAirportService(&repository.Repository{Airport: airports}, Infra{Cache: cache}, zap.NewNop())

	stored := []*entity.Airport{{Base: entity.Base{ID: 1}, Name: "Boryspil"}}
	cache.On("GetJSON", mock.Anything, airportsCacheKey, mock.Anything).Return(false, nil)
	airports.On("FindAll", mock.Anything, []string(nil)).Return(stored, nil)
	cache.On("SetJSON", mock.Anything, airportsCacheKey, mock.Anything).Return(nil)

	resp, err := service.ListAirports(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	cache.AssertExpectations(t)
}

func TestListAirports_CacheFailureFallsBack(t *testing.T) {
	airports := &MockAirportRepository{}
	cache := &MockCatalogCache{}
	service := NewAirportService(&repository.Repository{Airport: airports}, Infra{Cache: cache}, zap.NewNop())

	cache.On("GetJSON", mock.Anything, airportsCacheKey, mock.Anything).Return(false, assert.AnError)
	cache.On("SetJSON", mock.Anything, airportsCacheKey, mock.Anything).Return(assert.AnError)
	airports.On("FindAll", mock.Anything, []string(nil)).Return([]*entity.Airport{}, nil)

	resp, err := service.ListAirports(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestListAirports_FilteredBypassesCache(t *testing.T) {
	airports := &MockAirportRepository{}
	cache := &MockCatalogCache{}
	service := NewAirportService(&repository.Repository{Airport: airports}, Infra{Cache: cache}, zap.NewNop())

	airports.On("FindAll", mock.Anything, []string{"Kyiv"}).Return([]*entity.Airport{}, nil)

	_, err := service.ListAirports(context.Background(), []string{"Kyiv"})

	require.NoError(t, err)
	cache.AssertNotCalled(t, "GetJSON", mock.Anything, mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "SetJSON", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAirport_InvalidatesCache(t *testing.T) {
	airports := &MockAirportRepository{}
	cache := &MockCatalogCache{}
	service := NewAirportService(&repository.Repository{Airport: airports}, Infra{Cache: cache}, zap.NewNop())

	airports.On("Create", mock.Anything, mock.AnythingOfType("*entity.Airport")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Airport).ID = 7 }).
		Return(nil)
	cache.On("Delete", mock.Anything, []string{airportsCacheKey}).Return(nil)

	resp, err := service.CreateAirport(context.Background(), &request.AirportRequest{Name: "Zhuliany"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	cache.AssertExpectations(t)
}
