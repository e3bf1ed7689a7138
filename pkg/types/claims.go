package types

import "github.com/golang-jwt/jwt/v5"

// Claims carries the owner identity supplied by the auth collaborator.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
