package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"warehouse-backend/internal/domain"
	"warehouse-backend/internal/repository"
)

// ScoringPolicy holds the tunable weights and thresholds of the purchase
// recommendation scorer. The exact numbers are policy, not a correctness
// contract; the score stays monotonically non-decreasing in both recent
// frequency and total days rented.
type ScoringPolicy struct {
	FrequencyWeight float64
	DaysWeight      float64
	HighThreshold   int32
	MediumThreshold int32
}

// DefaultScoringPolicy mirrors the shipped config defaults.
func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		FrequencyWeight: 0.6,
		DaysWeight:      0.4,
		HighThreshold:   70,
		MediumThreshold: 40,
	}
}

type recommendationService struct {
	reservationRepo repository.ReservationRepository
	policy          ScoringPolicy
}

func NewRecommendationService(reservationRepo repository.ReservationRepository, policy ScoringPolicy) RecommendationService {
	return &recommendationService{
		reservationRepo: reservationRepo,
		policy:          policy,
	}
}

// GetPurchaseRecommendations ranks rented items by how heavily their
// rentals have used them. Read-only over the ledger; tolerates a ledger
// that changes mid-scan.
func (s *recommendationService) GetPurchaseRecommendations(ctx context.Context) ([]domain.PurchaseRecommendation, error) {
	usage, err := s.reservationRepo.GetRentalUsage(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	recs := make([]domain.PurchaseRecommendation, 0, len(usage))
	for _, u := range usage {
		recs = append(recs, scoreUsage(u, s.policy))
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].UtilizationScore != recs[j].UtilizationScore {
			return recs[i].UtilizationScore > recs[j].UtilizationScore
		}
		if recs[i].TotalDaysReserved != recs[j].TotalDaysReserved {
			return recs[i].TotalDaysReserved > recs[j].TotalDaysReserved
		}
		return recs[i].ItemName < recs[j].ItemName
	})
	return recs, nil
}

// scoreUsage turns one item's ledger aggregate into a ranked recommendation.
// Recent reservations weigh heavier than old ones; both signals are capped
// at 100 before weighting so neither can drown the other.
func scoreUsage(u domain.ItemUsage, p ScoringPolicy) domain.PurchaseRecommendation {
	frequencySignal := min32(100, 12*u.Last30Days+4*u.Last90Days+u.TotalReservations)
	daysSignal := min32(100, 2*u.TotalDays)

	frequencyPart := p.FrequencyWeight * float64(frequencySignal)
	daysPart := p.DaysWeight * float64(daysSignal)
	score := roundHalfUp(frequencyPart + daysPart)

	var avg int32
	if u.TotalReservations > 0 {
		avg = roundHalfUp(float64(u.TotalDays) / float64(u.TotalReservations))
	}

	level := domain.RecommendationLevelLow
	switch {
	case score >= p.HighThreshold:
		level = domain.RecommendationLevelHigh
	case score >= p.MediumThreshold:
		level = domain.RecommendationLevelMedium
	}

	return domain.PurchaseRecommendation{
		ItemID:                u.ItemID,
		ItemName:              u.ItemName,
		TotalReservations:     u.TotalReservations,
		Last30Days:            u.Last30Days,
		Last90Days:            u.Last90Days,
		TotalDaysReserved:     u.TotalDays,
		AvgDaysPerReservation: avg,
		UtilizationScore:      score,
		Level:                 level,
		Reason:                scoreReason(u, frequencyPart, daysPart),
	}
}

func scoreReason(u domain.ItemUsage, frequencyPart, daysPart float64) string {
	switch {
	case u.TotalReservations == 0:
		return "no rental history"
	case frequencyPart > daysPart:
		return fmt.Sprintf("rented often: %d reservations in the last 90 days", u.Last90Days)
	case daysPart > frequencyPart:
		return fmt.Sprintf("long rental time: %d days reserved in total", u.TotalDays)
	default:
		return fmt.Sprintf("steady demand: %d reservations over %d days", u.TotalReservations, u.TotalDays)
	}
}

// roundHalfUp rounds to the nearest integer, halves away from zero upward.
func roundHalfUp(x float64) int32 {
	return int32(math.Floor(x + 0.5))
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
