package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/lotto/internal/models"
)

// MockDrawRepository is a mock implementation of repository.DrawRepository
type MockDrawRepository struct {
	mock.Mock
}

func (m *MockDrawRepository) Get(ctx context.Context, id int64) (*models.Draw, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Draw), args.Error(1)
}

func (m *MockDrawRepository) GetByDate(ctx context.Context, date time.Time) (*models.Draw, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Draw), args.Error(1)
}

func (m *MockDrawRepository) List(ctx context.Context, filter models.DrawFilter) ([]models.Draw, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Draw), args.Error(1)
}

func (m *MockDrawRepository) Count(ctx context.Context, filter models.DrawFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockDrawRepository) History(ctx context.Context) ([]models.Draw, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Draw), args.Error(1)
}

func (m *MockDrawRepository) Insert(ctx context.Context, draw models.Draw) (int64, error) {
	args := m.Called(ctx, draw)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDrawRepository) InsertBatch(ctx context.Context, draws []models.Draw) ([]int64, error) {
	args := m.Called(ctx, draws)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockDrawRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDrawRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
