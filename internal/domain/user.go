package domain

import (
	"errors"
	"time"
)

// User represents a registered account holder.
type User struct {
	ID             string
	Email          string
	Name           string
	HashedPassword string
	Role           Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Active         bool
}

// Role represents a user's access level
type Role string

const (
	// RoleAdmin can manage every user's debts
	RoleAdmin Role = "admin"

	// RoleMember can manage their own debts and run simulations
	RoleMember Role = "member"
)

// Valid roles
var validRoles = map[Role]bool{
	RoleAdmin:  true,
	RoleMember: true,
}

// IsValid checks if the role is a valid role
func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanManageAll checks if the role can act on other users' resources
func (r Role) CanManageAll() bool {
	return r == RoleAdmin
}

// Authentication errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
)
