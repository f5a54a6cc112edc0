package domain

import "time"

type AvailabilityStatus string

const (
	AvailabilityStatusAvailable   AvailabilityStatus = "AVAILABLE"
	AvailabilityStatusPartial     AvailabilityStatus = "PARTIAL"
	AvailabilityStatusUnavailable AvailabilityStatus = "UNAVAILABLE"
)

// ConflictingReservation is one overlapping ledger row, reported so a human
// can see why availability is constrained.
type ConflictingReservation struct {
	ReservationID int32     `json:"reservation_id"`
	Quantity      int32     `json:"quantity"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	EventTitle    string    `json:"event_title,omitempty"`
}

// ItemAvailability is the per-item result of an availability query.
// QuantityAvailable may be negative for rented items; that is informational,
// not a hard block, since more units can be rented.
type ItemAvailability struct {
	ItemID            int32                    `json:"item_id"`
	ItemName          string                   `json:"item_name"`
	IsRent            bool                     `json:"is_rent"`
	QuantityTotal     int32                    `json:"quantity_total"`
	QuantityReserved  int32                    `json:"quantity_reserved"`
	QuantityAvailable int32                    `json:"quantity_available"`
	Status            AvailabilityStatus       `json:"status"`
	Conflicts         []ConflictingReservation `json:"conflicting_reservations"`
}

// AvailabilitySummary buckets the queried items by status.
type AvailabilitySummary struct {
	Available   int32 `json:"available"`
	Partial     int32 `json:"partial"`
	Unavailable int32 `json:"unavailable"`
}

// AvailabilityReport is the full answer to a GetAvailability call.
type AvailabilityReport struct {
	StartDate         time.Time           `json:"start_date"`
	EndDate           time.Time           `json:"end_date"`
	RequestedQuantity int32               `json:"requested_quantity"`
	Items             []ItemAvailability  `json:"items"`
	Summary           AvailabilitySummary `json:"summary"`
}
