package service

import (
	"context"
	"fmt"
	"log/slog"

	"warehouse-backend/internal/domain"
	"warehouse-backend/internal/logger"
	"warehouse-backend/internal/repository"

	"github.com/google/uuid"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	itemRepo        repository.ItemRepository
	kitRepo         repository.KitRepository
	guardMode       domain.GuardMode
	log             *slog.Logger
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	itemRepo repository.ItemRepository,
	kitRepo repository.KitRepository,
	guardMode domain.GuardMode,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		itemRepo:        itemRepo,
		kitRepo:         kitRepo,
		guardMode:       guardMode,
		log:             logger.WithService("reservation"),
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, userID, itemID, quantity int32, startDate, endDate string, eventID *int32, notes string) (*domain.Reservation, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		ItemID:    itemID,
		ItemName:  item.Name,
		Quantity:  quantity,
		StartDate: start,
		EndDate:   end,
		EventID:   eventID,
		Notes:     notes,
		CreatedBy: userID,
	}
	// The capacity re-check and the insert run inside one guarded section
	// so a concurrent writer cannot slip between them.
	if err := s.reservationRepo.CreateChecked(ctx, res, s.guardMode); err != nil {
		if !errIsTaxonomy(err) {
			s.log.Error("CreateReservation: store failure", "item_id", itemID, "quantity", quantity, "error", err)
		}
		return nil, err
	}
	s.log.Debug("Reservation created", "reservation_id", res.ID, "item_id", itemID, "days", res.Days())
	return res, nil
}

// ReserveKit expands one kit reservation request into one ledger row per
// kit item and commits them as a single unit. The expansion is optimistic:
// owned-item capacity is advisory at kit-reservation time and there is no
// per-item pre-check before the writes.
func (s *reservationService) ReserveKit(ctx context.Context, userID, kitID int32, startDate, endDate string, eventID *int32, notes string) ([]domain.Reservation, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	kit, err := s.kitRepo.GetByID(ctx, kitID)
	if err != nil {
		return nil, fmt.Errorf("%w: kit %d not found", domain.ErrValidation, kitID)
	}
	if len(kit.Items) == 0 {
		return nil, fmt.Errorf("%w: kit %d has no items", domain.ErrValidation, kitID)
	}

	groupID := uuid.NewString()
	group := make([]*domain.Reservation, 0, len(kit.Items))
	for _, ki := range kit.Items {
		group = append(group, &domain.Reservation{
			ItemID:    ki.ItemID,
			ItemName:  ki.ItemName,
			Quantity:  ki.Quantity,
			StartDate: start,
			EndDate:   end,
			EventID:   eventID,
			KitID:     &kit.ID,
			GroupID:   groupID,
			Notes:     notes,
			CreatedBy: userID,
		})
	}

	if err := s.reservationRepo.CreateGroup(ctx, group); err != nil {
		s.log.Error("ReserveKit: group insert failed, rolled back", "kit_id", kitID, "legs", len(group), "error", err)
		return nil, err
	}

	out := make([]domain.Reservation, len(group))
	for i, res := range group {
		out[i] = *res
		if res.EventID != nil {
			// Pick up the denormalized event title for display.
			if full, err := s.reservationRepo.GetByID(ctx, res.ID); err == nil {
				out[i] = *full
			}
		}
	}
	return out, nil
}

func (s *reservationService) GetReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

// UpdateReservation re-validates a date-range or quantity change exactly
// like a fresh insert.
func (s *reservationService) UpdateReservation(ctx context.Context, id, quantity int32, startDate, endDate string, eventID *int32, notes string) (*domain.Reservation, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res.Quantity = quantity
	res.StartDate = start
	res.EndDate = end
	res.EventID = eventID
	res.Notes = notes

	if err := s.reservationRepo.UpdateChecked(ctx, res, s.guardMode); err != nil {
		if !errIsTaxonomy(err) {
			s.log.Error("UpdateReservation: store failure", "reservation_id", id, "item_id", res.ItemID, "error", err)
		}
		return nil, err
	}
	return res, nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, id int32) error {
	// Deleting one leg of a kit group leaves its siblings untouched;
	// a group is a logical grouping, not a deletion unit.
	return s.reservationRepo.Delete(ctx, id)
}

func (s *reservationService) ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	return s.reservationRepo.List(ctx, filter)
}
