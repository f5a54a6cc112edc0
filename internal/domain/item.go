package domain

import "time"

// Item is a discrete, interchangeable inventory resource type. QuantityTotal
// bounds simultaneous reservations for owned items; for rented items
// (IsRent = true) the bound is advisory and availability may go negative.
type Item struct {
	ID            int32     `json:"id"`
	Name          string    `json:"name"`
	CategoryID    *int32    `json:"category_id,omitempty"`
	CategoryName  string    `json:"category_name,omitempty"`
	QuantityTotal int32     `json:"quantity_total"`
	IsRent        bool      `json:"is_rent"`
	Unit          string    `json:"unit"`
	Notes         string    `json:"notes"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`
}

// Category is grouping/display metadata with no bearing on availability.
type Category struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	SortOrder int32     `json:"sort_order"`
	CreatedOn time.Time `json:"created_on"`
}
