package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/lotto/internal/models"
)

// MockRowRepository is a mock implementation of repository.RowRepository
type MockRowRepository struct {
	mock.Mock
}

func (m *MockRowRepository) Insert(ctx context.Context, row models.Row) (int64, error) {
	args := m.Called(ctx, row)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRowRepository) List(ctx context.Context, filter models.RowFilter) ([]models.Row, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Row), args.Error(1)
}

func (m *MockRowRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
