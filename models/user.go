package models

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and the stored password hash.
// The password hash must never cross a trusted boundary.
type User struct {
	// Username is the unique, immutable identifier of the account.
	// Usernames are case-sensitive.
	Username string `json:"username"`

	// Password holds the bcrypt hash of the user's password at rest.
	// It is excluded from JSON serialization and cleared before a user
	// record leaves the service layer.
	Password string `json:"-"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`

	// IsAdmin marks the account as having the admin role.
	// Defaults to false unless set by an authorized actor.
	IsAdmin bool `json:"is_admin"`

	// Lists holds the destination lists owned by the user. Populated only
	// by single-user lookups; omitted from collection responses.
	Lists []DestinationList `json:"lists,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate carries the fields of a partial user update. Only non-nil
// fields are applied; nil fields retain their persisted values.
type UserUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password"`
	Email     *string `json:"email"`
	IsAdmin   *bool   `json:"is_admin"`
}
