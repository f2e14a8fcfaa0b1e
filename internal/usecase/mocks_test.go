package usecase

import (
	"context"
	"sync"

	"airport-booking/internal/data/entity"
	"airport-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTxManager runs nothing unless told to; tests use it to prove storage is untouched.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithinTx(ctx context.Context, fn func(repos *repository.Repository) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, flight *entity.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlightRepository) FindDetailByID(ctx context.Context, id int64) (*entity.FlightDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FlightDetails), args.Error(1)
}

func (m *MockFlightRepository) FindDetailsByIDs(ctx context.Context, ids []int64) ([]*entity.FlightDetails, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*entity.FlightDetails), args.Error(1)
}

func (m *MockFlightRepository) Search(ctx context.Context, filter repository.FlightFilter) ([]*entity.FlightDetails, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entity.FlightDetails), args.Error(1)
}

func (m *MockFlightRepository) FindTakenSeats(ctx context.Context, flightID int64) ([]entity.TakenSeat, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]entity.TakenSeat), args.Error(1)
}

func (m *MockFlightRepository) FindCapacity(ctx context.Context, flightID int64) (*entity.SeatCapacity, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SeatCapacity), args.Error(1)
}

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) Create(ctx context.Context, airport *entity.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportRepository) FindByID(ctx context.Context, id int64) (*entity.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Airport), args.Error(1)
}

func (m *MockAirportRepository) FindAll(ctx context.Context, cities []string) ([]*entity.Airport, error) {
	args := m.Called(ctx, cities)
	return args.Get(0).([]*entity.Airport), args.Error(1)
}

func (m *MockAirportRepository) Update(ctx context.Context, airport *entity.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCatalogCache struct {
	mock.Mock
}

func (m *MockCatalogCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogCache) SetJSON(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockCatalogCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, key string, payload any) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}

// countingMetrics records booking counters in memory.
type countingMetrics struct {
	mu        sync.Mutex
	orders    int
	tickets   int
	conflicts int
}

func (c *countingMetrics) OrderCreated(tickets int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders++
	c.tickets += tickets
}

func (c *countingMetrics) TicketBooked() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickets++
}

func (c *countingMetrics) SeatConflict() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conflicts++
}

type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) Create(ctx context.Context, route *entity.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepository) FindByID(ctx context.Context, id int64) (*entity.RouteDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RouteDetails), args.Error(1)
}

func (m *MockRouteRepository) FindAll(ctx context.Context) ([]*entity.RouteDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.RouteDetails), args.Error(1)
}

func (m *MockRouteRepository) Update(ctx context.Context, route *entity.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirplaneRepository struct {
	mock.Mock
}

func (m *MockAirplaneRepository) Create(ctx context.Context, airplane *entity.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

func (m *MockAirplaneRepository) FindByID(ctx context.Context, id int64) (*entity.AirplaneDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AirplaneDetails), args.Error(1)
}

func (m *MockAirplaneRepository) FindAll(ctx context.Context) ([]*entity.AirplaneDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AirplaneDetails), args.Error(1)
}

func (m *MockAirplaneRepository) Update(ctx context.Context, airplane *entity.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

func (m *MockAirplaneRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCrewRepository struct {
	mock.Mock
}

func (m *MockCrewRepository) Create(ctx context.Context, crew *entity.Crew) error {
	args := m.Called(ctx, crew)
	return args.Error(0)
}

func (m *MockCrewRepository) FindByID(ctx context.Context, id int64) (*entity.Crew, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Crew), args.Error(1)
}

func (m *MockCrewRepository) FindAll(ctx context.Context) ([]*entity.Crew, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Crew), args.Error(1)
}

func (m *MockCrewRepository) Update(ctx context.Context, crew *entity.Crew) error {
	args := m.Called(ctx, crew)
	return args.Error(0)
}

func (m *MockCrewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirplaneTypeRepository struct {
	mock.Mock
}

func (m *MockAirplaneTypeRepository) Create(ctx context.Context, airplaneType *entity.AirplaneType) error {
	args := m.Called(ctx, airplaneType)
	return args.Error(0)
}

func (m *MockAirplaneTypeRepository) FindByID(ctx context.Context, id int64) (*entity.AirplaneType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AirplaneType), args.Error(1)
}

func (m *MockAirplaneTypeRepository) FindAll(ctx context.Context) ([]*entity.AirplaneType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AirplaneType), args.Error(1)
}

func (m *MockAirplaneTypeRepository) Update(ctx context.Context, airplaneType *entity.AirplaneType) error {
	args := m.Called(ctx, airplaneType)
	return args.Error(0)
}

func (m *MockAirplaneTypeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
