package auth

import (
	"context"
	"time"

	adminRepo "cabtour/database/repository/admin"
	recordsRepo "cabtour/database/repository/records"
	userRepo "cabtour/database/repository/user"
	"cabtour/models"
	"cabtour/services/notification"
)

// AuthService signs customers in by email OTP and admins by password.
type AuthService interface {
	RequestOTP(ctx context.Context, email string) (*OTPIssued, error)
	VerifyOTP(ctx context.Context, email, code string, meta LoginMeta) (*CustomerSession, error)
	AdminLogin(ctx context.Context, adminID, password string, meta LoginMeta) (*AdminSession, error)
	VerifyCustomer(token string) (models.Principal, error)
	VerifyAdmin(token string) (models.Principal, error)
}

// LoginMeta is request information kept in the login history.
type LoginMeta struct {
	IP        string
	UserAgent string
}

// OTPIssued tells the client how long the emailed code lives.
type OTPIssued struct {
	Email      string `json:"email"`
	ExpiresIn  int    `json:"expiresIn"`
	ResendWait int    `json:"resendWait"`
}

// CustomerSession is returned after a successful OTP verification.
type CustomerSession struct {
	Token             string                   `json:"token"`
	User              *models.User             `json:"user"`
	IsProfileComplete bool                     `json:"isProfileComplete"`
	Completion        models.ProfileCompletion `json:"completion"`
}

// AdminSession is returned after a successful admin login.
type AdminSession struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
	Role    string `json:"role"`
}

// TokenConfig holds signing secrets and lifetimes. Admin tokens use their
// own secret so a customer token can never pass admin verification.
type TokenConfig struct {
	CustomerSecret []byte
	AdminSecret    []byte
	CustomerTTL    time.Duration
	AdminTTL       time.Duration
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	OTP      *OTPStore
	Users    userRepo.UserRepository
	Admins   adminRepo.AdminRepository
	Logins   recordsRepo.LoginHistoryRepository
	Notifier notification.Notifier
	Tokens   TokenConfig
}
