package domain

import "time"

// Reservation holds Quantity units of an item for the half-open date range
// [StartDate, EndDate). KitID and GroupID are set when the row was produced
// by a kit expansion; all legs of one kit reservation share both, plus one
// creation timestamp. EventID is a non-owning back-reference to the host's
// calendar subsystem, carried for display only.
type Reservation struct {
	ID         int32     `json:"id"`
	ItemID     int32     `json:"item_id"`
	ItemName   string    `json:"item_name,omitempty"`
	Quantity   int32     `json:"quantity"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	EventID    *int32    `json:"event_id,omitempty"`
	EventTitle string    `json:"event_title,omitempty"`
	KitID      *int32    `json:"kit_id,omitempty"`
	GroupID    string    `json:"group_id,omitempty"`
	Notes      string    `json:"notes"`
	CreatedBy  int32     `json:"created_by"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}

// Days returns the reserved duration in whole days (EndDate is exclusive).
func (r *Reservation) Days() int32 {
	return int32(r.EndDate.Sub(r.StartDate).Hours() / 24)
}

// Overlaps reports whether the reservation's range intersects the half-open
// range [start, end). Ranges that touch at an endpoint do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartDate.Before(end) && r.EndDate.After(start)
}

// ReservationFilter narrows ListReservations. Zero values mean "no filter";
// Start/End, when both set, match rows overlapping [Start, End).
type ReservationFilter struct {
	ItemID  int32
	EventID int32
	KitID   int32
	Start   time.Time
	End     time.Time
}

// GuardMode selects how the check-then-insert race on reservation writes is
// closed. The choice is explicit configuration, never ambient.
type GuardMode string

const (
	// GuardTransaction re-validates availability and inserts inside one
	// serializable transaction.
	GuardTransaction GuardMode = "transaction"
	// GuardItemLock holds a per-item advisory lock across the
	// check-then-insert sequence.
	GuardItemLock GuardMode = "item_lock"
)
