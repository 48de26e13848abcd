package models

import "time"

// LoginRecord is one successful sign-in, kept for the admin audit view.
type LoginRecord struct {
	ID            string    `bson:"id" json:"id"`
	PrincipalKind string    `bson:"principalKind" json:"principalKind"`
	PrincipalID   string    `bson:"principalId" json:"principalId"`
	Identifier    string    `bson:"identifier" json:"identifier"`
	IP            string    `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent     string    `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// ContactMessage is a message sent from the public contact form.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name" validate:"required,max=80"`
	Email     string    `bson:"email" json:"email" validate:"required,email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty" validate:"omitempty,max=20"`
	Subject   string    `bson:"subject,omitempty" json:"subject,omitempty" validate:"omitempty,max=150"`
	Message   string    `bson:"message" json:"message" validate:"required,max=5000"`
	IsRead    bool      `bson:"isRead" json:"isRead"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
