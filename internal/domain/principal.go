package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleViewer Role = "viewer"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleViewer || r == RoleAdmin
}

type Principal struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasRole informa se o principal possui exatamente o role exigido
func (p *Principal) HasRole(role Role) bool {
	return p != nil && p.Role == role
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Claims struct {
	PrincipalID int64  `json:"pid"`
	Username    string `json:"username"`
	Role        Role   `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) Principal() *Principal {
	return &Principal{
		ID:       c.PrincipalID,
		Username: c.Username,
		Role:     c.Role,
	}
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	Principal *Principal
}
