package model

import "github.com/google/uuid"

// Role identifies what a user can do in the workshop.
type Role string

const (
	RolePublic         Role = "public"
	RoleAdmin          Role = "admin"
	RoleServiceAdvisor Role = "sa"
	RoleMechanic       Role = "mechanic"
	RoleCashier        Role = "cashier"
)

// User is a workshop account. IsBusy is only meaningful for mechanics.
type User struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Role   Role      `json:"role"`
	IsBusy bool      `json:"is_busy"`
}
