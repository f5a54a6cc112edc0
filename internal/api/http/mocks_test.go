package http

import (
	"context"

	"warehouse-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateItem(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockCatalogService) GetItem(ctx context.Context, id int32) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockCatalogService) UpdateItem(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockCatalogService) DeleteItem(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCatalogService) ListItems(ctx context.Context, categoryID int32, page, pageSize int32) ([]domain.Item, int32, error) {
	args := m.Called(ctx, categoryID, page, pageSize)
	return args.Get(0).([]domain.Item), args.Get(1).(int32), args.Error(2)
}
func (m *MockCatalogService) CreateCategory(ctx context.Context, cat *domain.Category) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}
func (m *MockCatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCatalogService) UpdateCategory(ctx context.Context, cat *domain.Category) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}
func (m *MockCatalogService) DeleteCategory(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCatalogService) CreateKit(ctx context.Context, kit *domain.Kit) error {
	args := m.Called(ctx, kit)
	return args.Error(0)
}
func (m *MockCatalogService) GetKit(ctx context.Context, id int32) (*domain.Kit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Kit), args.Error(1)
}
func (m *MockCatalogService) ListKits(ctx context.Context) ([]domain.Kit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Kit), args.Error(1)
}
func (m *MockCatalogService) UpdateKit(ctx context.Context, kit *domain.Kit) error {
	args := m.Called(ctx, kit)
	return args.Error(0)
}
func (m *MockCatalogService) DeleteKit(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAvailabilityService
type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) GetAvailability(ctx context.Context, itemIDs []int32, categoryID int32, startDate, endDate string, requestedQuantity int32) (*domain.AvailabilityReport, error) {
	args := m.Called(ctx, itemIDs, categoryID, startDate, endDate, requestedQuantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityReport), args.Error(1)
}

// MockReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) CreateReservation(ctx context.Context, userID, itemID, quantity int32, startDate, endDate string, eventID *int32, notes string) (*domain.Reservation, error) {
	args := m.Called(ctx, userID, itemID, quantity, startDate, endDate, eventID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) ReserveKit(ctx context.Context, userID, kitID int32, startDate, endDate string, eventID *int32, notes string) ([]domain.Reservation, error) {
	args := m.Called(ctx, userID, kitID, startDate, endDate, eventID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationService) GetReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) UpdateReservation(ctx context.Context, id, quantity int32, startDate, endDate string, eventID *int32, notes string) (*domain.Reservation, error) {
	args := m.Called(ctx, id, quantity, startDate, endDate, eventID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) DeleteReservation(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReservationService) ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockRecommendationService
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) GetPurchaseRecommendations(ctx context.Context) ([]domain.PurchaseRecommendation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseRecommendation), args.Error(1)
}
