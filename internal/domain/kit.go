package domain

import "time"

// Kit is a named bundle of items reserved as one unit.
type Kit struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes"`
	Items     []KitItem `json:"items"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// KitItem is one line of a kit: an item and how many units the kit needs.
type KitItem struct {
	ItemID   int32  `json:"item_id"`
	ItemName string `json:"item_name,omitempty"`
	Quantity int32  `json:"quantity"`
	Position int32  `json:"position"`
}
