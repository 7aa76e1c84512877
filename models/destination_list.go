package models

import "time"

// DestinationList is a travel destination planned by a user, with the
// stay dates and the packing/itinerary items collected for it.
type DestinationList struct {
	// ID is the server-assigned surrogate key of the list.
	ID int64 `json:"id"`

	// Username is the owner of the list. Deleting the owner cascades to
	// the list and its items.
	Username string `json:"username,omitempty"`

	SearchedAddress string    `json:"searched_address"`
	ArrivalDate     time.Time `json:"arrival_date"`
	DepartureDate   time.Time `json:"departure_date"`

	// Items holds the list's items. Populated only by single-list
	// lookups; omitted from collection responses.
	Items []ListItem `json:"items,omitempty"`
}

// TableName returns the name of the database table
// associated with the DestinationList model.
func (l DestinationList) TableName() string {
	return "destination_lists"
}

// DestinationListUpdate carries the fields of a partial list update.
type DestinationListUpdate struct {
	SearchedAddress *string    `json:"searched_address"`
	ArrivalDate     *time.Time `json:"arrival_date"`
	DepartureDate   *time.Time `json:"departure_date"`
}
