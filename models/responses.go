package models

// Response envelopes returned by the HTTP layer. Every successful response
// wraps its payload under a resource-named key, mirroring the route it was
// served from.

// UserResponse wraps a single user. Token is present only on the
// registration and admin-create routes.
type UserResponse struct {
	User  User   `json:"user"`
	Token string `json:"token,omitempty"`
}

// UsersResponse wraps the full user collection.
type UsersResponse struct {
	Users []User `json:"users"`
}

// TokenResponse wraps a freshly issued credential.
type TokenResponse struct {
	Token string `json:"token"`
}

// ListResponse wraps a single destination list.
type ListResponse struct {
	List DestinationList `json:"list"`
}

// ListsResponse wraps a destination list collection.
type ListsResponse struct {
	Lists []DestinationList `json:"lists"`
}

// ItemResponse wraps a single list item.
type ItemResponse struct {
	Item ListItem `json:"item"`
}

// ItemsResponse wraps a list item collection.
type ItemsResponse struct {
	Items []ListItem `json:"items"`
}

// DeletedResponse acknowledges a successful delete with the key of the
// removed entity (username for users, numeric id otherwise).
type DeletedResponse struct {
	Deleted any `json:"deleted"`
}

// ErrorResponse is the single error envelope emitted by the HTTP layer.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the human-readable message and the HTTP status it was
// served with.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}
