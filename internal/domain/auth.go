package domain

import (
	"github.com/dgrijalva/jwt-go"
)

// Claim is the payload of a dashboard session token.
type Claim struct {
	Authenticated bool `json:"authenticated"`
	jwt.StandardClaims
}
