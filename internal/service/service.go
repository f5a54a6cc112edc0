package service

import (
	"context"

	"warehouse-backend/internal/domain"
)

type CatalogService interface {
	CreateItem(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, id int32) (*domain.Item, error)
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, id int32) error
	ListItems(ctx context.Context, categoryID int32, page, pageSize int32) ([]domain.Item, int32, error)

	CreateCategory(ctx context.Context, cat *domain.Category) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, cat *domain.Category) error
	DeleteCategory(ctx context.Context, id int32) error

	CreateKit(ctx context.Context, kit *domain.Kit) error
	GetKit(ctx context.Context, id int32) (*domain.Kit, error)
	ListKits(ctx context.Context) ([]domain.Kit, error)
	UpdateKit(ctx context.Context, kit *domain.Kit) error
	DeleteKit(ctx context.Context, id int32) error
}

type AvailabilityService interface {
	// GetAvailability computes free quantity per item for the half-open
	// range [startDate, endDate). Either itemIDs or categoryID narrows the
	// item set; with neither, every item is reported. requestedQuantity
	// drives the summary bucketing and defaults to 1.
	GetAvailability(ctx context.Context, itemIDs []int32, categoryID int32, startDate, endDate string, requestedQuantity int32) (*domain.AvailabilityReport, error)
}

type ReservationService interface {
	CreateReservation(ctx context.Context, userID, itemID, quantity int32, startDate, endDate string, eventID *int32, notes string) (*domain.Reservation, error)
	ReserveKit(ctx context.Context, userID, kitID int32, startDate, endDate string, eventID *int32, notes string) ([]domain.Reservation, error)
	GetReservation(ctx context.Context, id int32) (*domain.Reservation, error)
	UpdateReservation(ctx context.Context, id, quantity int32, startDate, endDate string, eventID *int32, notes string) (*domain.Reservation, error)
	DeleteReservation(ctx context.Context, id int32) error
	ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
}

type RecommendationService interface {
	GetPurchaseRecommendations(ctx context.Context) ([]domain.PurchaseRecommendation, error)
}
