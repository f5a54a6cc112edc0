package jobs

import (
	"context"

	"warehouse-backend/internal/domain"
	"warehouse-backend/internal/logger"
)

// RefreshPurchaseRecommendations recomputes the purchase ranking over the
// ledger and logs the leaders. Read-only; safe to run while reservations
// are being written.
func (jr *JobRunner) RefreshPurchaseRecommendations() {
	jr.runWithRecovery("RefreshPurchaseRecommendations", func() {
		ctx := context.Background()

		recs, err := jr.services.Recommendation.GetPurchaseRecommendations(ctx)
		if err != nil {
			logger.Error("Failed to refresh purchase recommendations", "error", err)
			return
		}

		logger.Info("Purchase recommendations refreshed", "items", len(recs), "high_priority", countHighPriority(recs))

		for i, rec := range recs {
			if i >= 5 {
				break
			}
			logger.Info("Top purchase candidate",
				"rank", i+1,
				"item", rec.ItemName,
				"score", rec.UtilizationScore,
				"level", rec.Level,
				"reason", rec.Reason)
		}
	})
}

func countHighPriority(recs []domain.PurchaseRecommendation) int {
	high := 0
	for _, rec := range recs {
		if rec.Level == domain.RecommendationLevelHigh {
			high++
		}
	}
	return high
}
