package mocks

import (
	"context"

	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSeatLayoutRepo struct {
	mock.Mock
	repository.SeatLayoutRepository
}

func (m *MockSeatLayoutRepo) Create(ctx context.Context, layout *entity.SeatLayout) error {
	args := m.Called(ctx, layout)
	return args.Error(0)
}

func (m *MockSeatLayoutRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.SeatLayout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SeatLayout), args.Error(1)
}

func (m *MockSeatLayoutRepo) FindAll(ctx context.Context) ([]*entity.SeatLayout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SeatLayout), args.Error(1)
}
