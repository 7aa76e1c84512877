package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claim set carried by every issued credential.
// Besides the registered claims it identifies the account and its role,
// so authorization checks do not need a database round trip.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Username is the account the token was issued for.
	Username string `json:"username"`

	// IsAdmin is the role flag captured at issuance time.
	IsAdmin bool `json:"is_admin"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// TokenClaims provides access to the claim set, including the
	// username and role of the authenticated identity.
	TokenClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
