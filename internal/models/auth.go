package models

import "github.com/golang-jwt/jwt/v5"

// AuthClaims are the JWT claims carried by dashboard bearer tokens.
type AuthClaims struct {
	jwt.RegisteredClaims
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
}
