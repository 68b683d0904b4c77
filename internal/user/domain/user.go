package domain

import (
	"context"
	"time"
)

// Role types
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Status values
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents a back-office user. TempPassword holds the placeholder
// credential set by a password reset and is null otherwise.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Role         string    `json:"role" gorm:"not null;default:staff"`
	Status       string    `json:"status" gorm:"not null;default:active"`
	TempPassword *string   `json:"temp_password"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// ValidRole reports whether role is one of admin, manager, staff
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// ValidStatus reports whether status is active or inactive
func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusInactive
}

// UserFilter narrows a user listing. Empty fields do not filter.
type UserFilter struct {
	Search string // substring of name or email
	Role   string
	Status string
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindAll(ctx context.Context, filter UserFilter) ([]User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
}
