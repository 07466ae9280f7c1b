package cache

import (
	"context"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCartStore struct {
	mock.Mock
}

func NewMockCartStore() *MockCartStore {
	return &MockCartStore{}
}

func (m *MockCartStore) Get(ctx context.Context, profileID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, profileID)

	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartStore) Save(ctx context.Context, cart *models.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartStore) Delete(ctx context.Context, profileID uuid.UUID) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockCartStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
