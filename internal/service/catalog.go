package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"warehouse-backend/internal/domain"
	"warehouse-backend/internal/logger"
	"warehouse-backend/internal/repository"
)

type catalogService struct {
	itemRepo        repository.ItemRepository
	categoryRepo    repository.CategoryRepository
	kitRepo         repository.KitRepository
	reservationRepo repository.ReservationRepository
	log             *slog.Logger
}

func NewCatalogService(
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	kitRepo repository.KitRepository,
	reservationRepo repository.ReservationRepository,
) CatalogService {
	return &catalogService{
		itemRepo:        itemRepo,
		categoryRepo:    categoryRepo,
		kitRepo:         kitRepo,
		reservationRepo: reservationRepo,
		log:             logger.WithService("catalog"),
	}
}

func (s *catalogService) CreateItem(ctx context.Context, item *domain.Item) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if item.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *item.CategoryID); err != nil {
			return err
		}
	}
	return s.itemRepo.Create(ctx, item)
}

func (s *catalogService) GetItem(ctx context.Context, id int32) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *catalogService) UpdateItem(ctx context.Context, item *domain.Item) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if item.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *item.CategoryID); err != nil {
			return err
		}
	}
	return s.itemRepo.Update(ctx, item)
}

// DeleteItem refuses to remove an item that still has reservations ending
// today or later; the ledger is never cascade-cleaned. Past-only history
// does not block deletion.
func (s *catalogService) DeleteItem(ctx context.Context, id int32) error {
	count, err := s.reservationRepo.CountFromDate(ctx, id, today())
	if err != nil {
		s.log.Error("DeleteItem: counting active reservations failed", "item_id", id, "error", err)
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: item %d has %d active or upcoming reservations", domain.ErrConflict, id, count)
	}
	return s.itemRepo.Delete(ctx, id)
}

func (s *catalogService) ListItems(ctx context.Context, categoryID int32, page, pageSize int32) ([]domain.Item, int32, error) {
	return s.itemRepo.List(ctx, categoryID, page, pageSize)
}

func (s *catalogService) CreateCategory(ctx context.Context, cat *domain.Category) error {
	if cat.Name == "" {
		return fmt.Errorf("%w: category name is required", domain.ErrValidation)
	}
	return s.categoryRepo.Create(ctx, cat)
}

func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *catalogService) UpdateCategory(ctx context.Context, cat *domain.Category) error {
	if cat.Name == "" {
		return fmt.Errorf("%w: category name is required", domain.ErrValidation)
	}
	return s.categoryRepo.Update(ctx, cat)
}

func (s *catalogService) DeleteCategory(ctx context.Context, id int32) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *catalogService) CreateKit(ctx context.Context, kit *domain.Kit) error {
	if err := s.validateKit(ctx, kit); err != nil {
		return err
	}
	return s.kitRepo.Create(ctx, kit)
}

func (s *catalogService) GetKit(ctx context.Context, id int32) (*domain.Kit, error) {
	return s.kitRepo.GetByID(ctx, id)
}

func (s *catalogService) ListKits(ctx context.Context) ([]domain.Kit, error) {
	return s.kitRepo.List(ctx)
}

func (s *catalogService) UpdateKit(ctx context.Context, kit *domain.Kit) error {
	if err := s.validateKit(ctx, kit); err != nil {
		return err
	}
	return s.kitRepo.Update(ctx, kit)
}

// DeleteKit refuses while the kit has active or upcoming reservations.
// Past reservations keep their kit back-reference; removing a kit never
// touches the ledger.
func (s *catalogService) DeleteKit(ctx context.Context, id int32) error {
	count, err := s.reservationRepo.CountFromDateByKit(ctx, id, today())
	if err != nil {
		s.log.Error("DeleteKit: counting active reservations failed", "kit_id", id, "error", err)
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: kit %d has %d active or upcoming reservations", domain.ErrConflict, id, count)
	}
	return s.kitRepo.Delete(ctx, id)
}

func (s *catalogService) validateKit(ctx context.Context, kit *domain.Kit) error {
	if kit.Name == "" {
		return fmt.Errorf("%w: kit name is required", domain.ErrValidation)
	}
	if len(kit.Items) == 0 {
		return fmt.Errorf("%w: kit must contain at least one item", domain.ErrValidation)
	}
	ids := make([]int32, 0, len(kit.Items))
	seen := make(map[int32]bool, len(kit.Items))
	for _, ki := range kit.Items {
		if ki.Quantity < 1 {
			return fmt.Errorf("%w: kit item %d quantity must be at least 1", domain.ErrValidation, ki.ItemID)
		}
		if seen[ki.ItemID] {
			return fmt.Errorf("%w: kit lists item %d more than once", domain.ErrValidation, ki.ItemID)
		}
		seen[ki.ItemID] = true
		ids = append(ids, ki.ItemID)
	}

	items, err := s.itemRepo.ListByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(items) != len(ids) {
		found := make(map[int32]bool, len(items))
		for _, it := range items {
			found[it.ID] = true
		}
		for _, id := range ids {
			if !found[id] {
				return fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
			}
		}
	}
	return nil
}

func validateItem(item *domain.Item) error {
	if item.Name == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrValidation)
	}
	if item.QuantityTotal < 0 {
		return fmt.Errorf("%w: quantity_total must not be negative", domain.ErrValidation)
	}
	return nil
}

// errIsTaxonomy reports whether err already carries one of the engine's
// error kinds; anything else is an internal store failure.
func errIsTaxonomy(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrConflict)
}
