package repository

import (
	"context"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-rolled testify mocks for the repository interfaces, shared by the
// service and handler tests.

type MockAddressRepository struct {
	mock.Mock
}

func NewMockAddressRepository() *MockAddressRepository {
	return &MockAddressRepository{}
}

func (m *MockAddressRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) InsertOrderItems(ctx context.Context, items []models.OrderItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)

	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByProfile(ctx context.Context, profileID uuid.UUID, page, size int) ([]models.Order, int, error) {
	args := m.Called(ctx, profileID, page, size)

	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

func (m *MockProductRepository) ListActive(ctx context.Context, limit int) ([]models.ProductRow, error) {
	args := m.Called(ctx, limit)

	if rows, ok := args.Get(0).([]models.ProductRow); ok {
		return rows, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) GetUnitPrice(ctx context.Context, id uuid.UUID) (float64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{}
}

func (m *MockProfileRepository) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, id)

	if profile, ok := args.Get(0).(*models.Profile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, id, req)

	if profile, ok := args.Get(0).(*models.Profile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileRepository) GetPrivacy(ctx context.Context, profileID uuid.UUID) (*models.PrivacySettings, error) {
	args := m.Called(ctx, profileID)

	if settings, ok := args.Get(0).(*models.PrivacySettings); ok {
		return settings, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileRepository) SavePrivacy(ctx context.Context, settings *models.PrivacySettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}
