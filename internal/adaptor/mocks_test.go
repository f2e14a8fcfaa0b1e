package adaptor

import (
	"context"

	"airport-booking/internal/dto/request"
	"airport-booking/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderDetailResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.OrderDetailResponse), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, userID uuid.UUID, req request.PaginatedRequest) (*response.PaginatedResponse[response.OrderListResponse], error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.OrderListResponse]), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, userID uuid.UUID, orderID int64) (*response.OrderDetailResponse, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.OrderDetailResponse), args.Error(1)
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, userID uuid.UUID, orderID int64) error {
	args := m.Called(ctx, userID, orderID)
	return args.Error(0)
}

type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) CreateTicket(ctx context.Context, userID uuid.UUID, orderID int64, req *request.TicketRequest) (*response.TicketResponse, error) {
	args := m.Called(ctx, userID, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TicketResponse), args.Error(1)
}

type MockAirportService struct {
	mock.Mock
}

func (m *MockAirportService) ListAirports(ctx context.Context, cities []string) ([]response.AirportResponse, error) {
	args := m.Called(ctx, cities)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.AirportResponse), args.Error(1)
}

func (m *MockAirportService) GetAirport(ctx context.Context, id int64) (*response.AirportResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AirportResponse), args.Error(1)
}

func (m *MockAirportService) CreateAirport(ctx context.Context, req *request.AirportRequest) (*response.AirportResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AirportResponse), args.Error(1)
}

func (m *MockAirportService) UpdateAirport(ctx context.Context, id int64, req *request.AirportRequest) (*response.AirportResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AirportResponse), args.Error(1)
}

func (m *MockAirportService) DeleteAirport(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
