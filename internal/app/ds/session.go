package ds

import (
	"github.com/golang-jwt/jwt/v5"
)

// Session is the server-side authentication state kept in Redis.
// Redis is authoritative: once the entry is deleted the token is dead,
// regardless of what the JWT says.
type Session struct {
	Login string
	Role  string
}

// SessionClaims — содержимое токена сессии. ID (jti) служит ключом в Redis.
type SessionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}
