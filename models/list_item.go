package models

import "time"

// ListItem is a single packing or itinerary entry belonging to a
// destination list.
type ListItem struct {
	// ID is the server-assigned surrogate key of the item.
	ID int64 `json:"id"`

	// ListID is the destination list the item belongs to. Deleting the
	// list cascades to its items.
	ListID int64 `json:"list_id"`

	Category string `json:"category"`
	Item     string `json:"item"`
	Qty      int    `json:"qty"`

	// SearchedAddress, ArrivalDate and DepartureDate mirror the parent
	// list's columns. They are populated only by single-item lookups,
	// which join against destination_lists.
	SearchedAddress *string    `json:"searched_address,omitempty"`
	ArrivalDate     *time.Time `json:"arrival_date,omitempty"`
	DepartureDate   *time.Time `json:"departure_date,omitempty"`
}

// TableName returns the name of the database table
// associated with the ListItem model.
func (i ListItem) TableName() string {
	return "list_items"
}

// ListItemUpdate carries the fields of a partial item update.
type ListItemUpdate struct {
	Category *string `json:"category"`
	Item     *string `json:"item"`
	Qty      *int    `json:"qty"`
}
