package entities

import "time"

type AuthToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenClaims проверенные утверждения из bearer-токена.
type TokenClaims struct {
	CustomerID   string
	CustomerCode string
	Role         CustomerRoleType
}

func (c *TokenClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
