package models

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is an authenticated account. Shop records live in Mongo; accounts
// are kept relational so email uniqueness and the role column are enforced
// by the database instead of an in-code allow-list.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'customer'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
