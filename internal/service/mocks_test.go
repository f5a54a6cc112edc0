package service

import (
	"context"
	"time"

	"warehouse-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepo) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepo) List(ctx context.Context, categoryID int32, page, pageSize int32) ([]domain.Item, int32, error) {
	args := m.Called(ctx, categoryID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Item), args.Get(1).(int32), args.Error(2)
}

func (m *MockItemRepo) ListByIDs(ctx context.Context, ids []int32) ([]domain.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, cat *domain.Category) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepo) Update(ctx context.Context, cat *domain.Category) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockKitRepo struct {
	mock.Mock
}

func (m *MockKitRepo) Create(ctx context.Context, kit *domain.Kit) error {
	args := m.Called(ctx, kit)
	return args.Error(0)
}

func (m *MockKitRepo) GetByID(ctx context.Context, id int32) (*domain.Kit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Kit), args.Error(1)
}

func (m *MockKitRepo) List(ctx context.Context) ([]domain.Kit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Kit), args.Error(1)
}

func (m *MockKitRepo) Update(ctx context.Context, kit *domain.Kit) error {
	args := m.Called(ctx, kit)
	return args.Error(0)
}

func (m *MockKitRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *MockReservationRepo) CreateChecked(ctx context.Context, res *domain.Reservation, mode domain.GuardMode) error {
	args := m.Called(ctx, res, mode)
	return args.Error(0)
}

func (m *MockReservationRepo) UpdateChecked(ctx context.Context, res *domain.Reservation, mode domain.GuardMode) error {
	args := m.Called(ctx, res, mode)
	return args.Error(0)
}

func (m *MockReservationRepo) CreateGroup(ctx context.Context, group []*domain.Reservation) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReservationRepo) List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) ListOverlapping(ctx context.Context, itemID int32, start, end time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, itemID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) CountFromDate(ctx context.Context, itemID int32, from time.Time) (int32, error) {
	args := m.Called(ctx, itemID, from)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockReservationRepo) CountFromDateByKit(ctx context.Context, kitID int32, from time.Time) (int32, error) {
	args := m.Called(ctx, kitID, from)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockReservationRepo) GetRentalUsage(ctx context.Context, now time.Time) ([]domain.ItemUsage, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemUsage), args.Error(1)
}
