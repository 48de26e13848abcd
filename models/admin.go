package models

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Admin is a back-office account. PasswordHash never leaves the server.
type Admin struct {
	ID           string     `bson:"id" json:"id"`
	AdminID      string     `bson:"adminId" json:"adminId"`
	PasswordHash string     `bson:"passwordHash" json:"-"`
	Role         string     `bson:"role" json:"role"`
	IsActive     bool       `bson:"isActive" json:"isActive"`
	LastLogin    *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}
