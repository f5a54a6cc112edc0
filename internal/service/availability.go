package service

import (
	"context"
	"fmt"

	"warehouse-backend/internal/domain"
	"warehouse-backend/internal/repository"
)

// availabilityService computes free quantities by overlapping existing
// ledger rows. It holds no state between calls; callers wanting a cache
// wrap the AvailabilityService interface explicitly.
type availabilityService struct {
	itemRepo        repository.ItemRepository
	reservationRepo repository.ReservationRepository
}

func NewAvailabilityService(itemRepo repository.ItemRepository, reservationRepo repository.ReservationRepository) AvailabilityService {
	return &availabilityService{
		itemRepo:        itemRepo,
		reservationRepo: reservationRepo,
	}
}

func (s *availabilityService) GetAvailability(ctx context.Context, itemIDs []int32, categoryID int32, startDate, endDate string, requestedQuantity int32) (*domain.AvailabilityReport, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if requestedQuantity < 1 {
		requestedQuantity = 1
	}

	items, err := s.resolveItems(ctx, itemIDs, categoryID)
	if err != nil {
		return nil, err
	}

	report := &domain.AvailabilityReport{
		StartDate:         start,
		EndDate:           end,
		RequestedQuantity: requestedQuantity,
		Items:             make([]domain.ItemAvailability, 0, len(items)),
	}

	for _, item := range items {
		overlapping, err := s.reservationRepo.ListOverlapping(ctx, item.ID, start, end)
		if err != nil {
			return nil, err
		}

		var reserved int32
		conflicts := make([]domain.ConflictingReservation, 0, len(overlapping))
		for _, res := range overlapping {
			reserved += res.Quantity
			conflicts = append(conflicts, domain.ConflictingReservation{
				ReservationID: res.ID,
				Quantity:      res.Quantity,
				StartDate:     res.StartDate,
				EndDate:       res.EndDate,
				EventTitle:    res.EventTitle,
			})
		}

		// Integer arithmetic throughout; for rented items the result may be
		// negative and is reported as-is.
		available := item.QuantityTotal - reserved

		ia := domain.ItemAvailability{
			ItemID:            item.ID,
			ItemName:          item.Name,
			IsRent:            item.IsRent,
			QuantityTotal:     item.QuantityTotal,
			QuantityReserved:  reserved,
			QuantityAvailable: available,
			Status:            bucket(available, requestedQuantity),
			Conflicts:         conflicts,
		}
		switch ia.Status {
		case domain.AvailabilityStatusAvailable:
			report.Summary.Available++
		case domain.AvailabilityStatusPartial:
			report.Summary.Partial++
		case domain.AvailabilityStatusUnavailable:
			report.Summary.Unavailable++
		}
		report.Items = append(report.Items, ia)
	}
	return report, nil
}

func (s *availabilityService) resolveItems(ctx context.Context, itemIDs []int32, categoryID int32) ([]domain.Item, error) {
	if len(itemIDs) > 0 {
		items, err := s.itemRepo.ListByIDs(ctx, itemIDs)
		if err != nil {
			return nil, err
		}
		if len(items) != len(itemIDs) {
			found := make(map[int32]bool, len(items))
			for _, it := range items {
				found[it.ID] = true
			}
			for _, id := range itemIDs {
				if !found[id] {
					return nil, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
				}
			}
		}
		return items, nil
	}
	items, _, err := s.itemRepo.List(ctx, categoryID, 0, 0)
	return items, err
}

func bucket(available, requested int32) domain.AvailabilityStatus {
	switch {
	case available >= requested:
		return domain.AvailabilityStatusAvailable
	case available > 0:
		return domain.AvailabilityStatusPartial
	default:
		return domain.AvailabilityStatusUnavailable
	}
}
