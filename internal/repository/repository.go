package repository

import (
	"context"
	"time"

	"warehouse-backend/internal/domain"
)

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int32) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, categoryID int32, page, pageSize int32) ([]domain.Item, int32, error)
	ListByIDs(ctx context.Context, ids []int32) ([]domain.Item, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, cat *domain.Category) error
	GetByID(ctx context.Context, id int32) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, cat *domain.Category) error
	Delete(ctx context.Context, id int32) error
}

type KitRepository interface {
	// Create inserts the kit header and all its lines in one transaction;
	// a partial failure leaves no orphan kit behind.
	Create(ctx context.Context, kit *domain.Kit) error
	GetByID(ctx context.Context, id int32) (*domain.Kit, error)
	List(ctx context.Context) ([]domain.Kit, error)
	// Update replaces the kit's line set, not merges it.
	Update(ctx context.Context, kit *domain.Kit) error
	Delete(ctx context.Context, id int32) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	// CreateChecked re-validates owned-item capacity and inserts within one
	// guarded section (serializable transaction or per-item advisory lock,
	// per mode). Returns domain.ErrInsufficientQuantity when the item is
	// owned and the insert would oversubscribe it.
	CreateChecked(ctx context.Context, res *domain.Reservation, mode domain.GuardMode) error
	// UpdateChecked applies a date-range or quantity change under the same
	// guard as a fresh insert, excluding the row itself from the overlap sum.
	UpdateChecked(ctx context.Context, res *domain.Reservation, mode domain.GuardMode) error
	// CreateGroup inserts all legs of one kit expansion in one transaction;
	// other readers never observe a partially expanded group.
	CreateGroup(ctx context.Context, group []*domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	ListOverlapping(ctx context.Context, itemID int32, start, end time.Time) ([]domain.Reservation, error)
	CountFromDate(ctx context.Context, itemID int32, from time.Time) (int32, error)
	CountFromDateByKit(ctx context.Context, kitID int32, from time.Time) (int32, error)
	// GetRentalUsage aggregates ledger history per rented item for the
	// purchase-recommendation scorer.
	GetRentalUsage(ctx context.Context, now time.Time) ([]domain.ItemUsage, error)
}
