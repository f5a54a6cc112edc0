package domain

type RecommendationLevel string

const (
	RecommendationLevelHigh   RecommendationLevel = "HIGH"
	RecommendationLevelMedium RecommendationLevel = "MEDIUM"
	RecommendationLevelLow    RecommendationLevel = "LOW"
)

// ItemUsage is the raw per-item aggregate the scorer reads from the ledger,
// computed only for rented items (the purchase candidates).
type ItemUsage struct {
	ItemID            int32  `json:"item_id"`
	ItemName          string `json:"item_name"`
	TotalReservations int32  `json:"total_reservations"`
	Last30Days        int32  `json:"last_30_days"`
	Last90Days        int32  `json:"last_90_days"`
	TotalDays         int32  `json:"total_days"`
}

// PurchaseRecommendation ranks one rented item as a purchase candidate.
// UtilizationScore is in [0,100], monotonically non-decreasing in both
// recent reservation frequency and total days rented.
type PurchaseRecommendation struct {
	ItemID                int32               `json:"item_id"`
	ItemName              string              `json:"item_name"`
	TotalReservations     int32               `json:"total_reservations"`
	Last30Days            int32               `json:"last_30_days"`
	Last90Days            int32               `json:"last_90_days"`
	TotalDaysReserved     int32               `json:"total_days_reserved"`
	AvgDaysPerReservation int32               `json:"avg_days_per_reservation"`
	UtilizationScore      int32               `json:"utilization_score"`
	Level                 RecommendationLevel `json:"recommendation_level"`
	Reason                string              `json:"recommendation_reason"`
}
