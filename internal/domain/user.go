package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims identifica o operador autenticado
type Claims struct {
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}
