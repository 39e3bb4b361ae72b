package models

import "time"

type AdminRole string

const (
	RoleAdmin  AdminRole = "admin"
	RoleEditor AdminRole = "editor"
)

// Admin администратор сайта
type Admin struct {
	Base         `bson:",inline"`
	Email        string    `json:"email" bson:"email" validate:"required,email"`
	PasswordHash string    `json:"-" bson:"passwordHash" validate:"required"`
	Role         AdminRole `json:"role" bson:"role" validate:"required,oneof=admin editor"`
}

func (a *Admin) Normalize() {
	if a.Role == "" {
		a.Role = RoleAdmin
	}
}

// Principal аутентифицированный администратор, полученный из cookie запроса
type Principal struct {
	AdminID   string    `json:"-"`
	Email     string    `json:"email"`
	Role      AdminRole `json:"role"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
}
