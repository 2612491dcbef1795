package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload carries the operator identity minted into a token.
type AccessTokenPayload struct {
	UserID uuid.UUID
	Email  string
	Perfil string
	JTI    string
}

// AccessTokenClaims is the JWT claim set for back-office operators.
type AccessTokenClaims struct {
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email"`
	Perfil string    `json:"perfil"`
	jwt.RegisteredClaims
}
