package model

import "github.com/golang-jwt/jwt/v5"

// CallerClaims identifies the user behind an exchange. The user id travels
// in the registered Subject claim.
type CallerClaims struct {
	jwt.RegisteredClaims
}
