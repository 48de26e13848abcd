package models

import (
	"strings"
	"time"
)

const RoleCustomer = "customer"

// User is a customer account, identified by email.
type User struct {
	ID        string     `bson:"id" json:"id"`
	Email     string     `bson:"email" json:"email"`
	Name      string     `bson:"name,omitempty" json:"name,omitempty"`
	Phone     string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string     `bson:"address,omitempty" json:"address,omitempty"`
	Role      string     `bson:"role" json:"role"`
	IsActive  bool       `bson:"isActive" json:"isActive"`
	LastLogin *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// ProfileUpdate carries the editable profile fields. Nil fields are left alone.
type ProfileUpdate struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=80"`
	Phone   *string `json:"phone" validate:"omitempty,min=7,max=20"`
	Address *string `json:"address" validate:"omitempty,max=300"`
}

// ProfileCompletion reports whether a user may book.
type ProfileCompletion struct {
	Complete bool     `json:"complete"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Address  string   `json:"address"`
	Missing  []string `json:"missing,omitempty"`
}

// Completion derives the booking precondition from the stored profile.
func (u *User) Completion() ProfileCompletion {
	pc := ProfileCompletion{Name: u.Name, Phone: u.Phone, Address: u.Address}
	if strings.TrimSpace(u.Name) == "" {
		pc.Missing = append(pc.Missing, "name")
	}
	if strings.TrimSpace(u.Phone) == "" {
		pc.Missing = append(pc.Missing, "phone")
	}
	if strings.TrimSpace(u.Address) == "" {
		pc.Missing = append(pc.Missing, "address")
	}
	pc.Complete = len(pc.Missing) == 0
	return pc
}
