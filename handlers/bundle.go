package handlers

import (
	"context"

	"cabtour/middleware"
	"cabtour/utils"
)

// HandlerBundle groups all endpoint handlers plus what the route
// middleware needs.
type HandlerBundle struct {
	Tokens   middleware.TokenVerifier
	Accounts middleware.AccountLookup
	Profiles middleware.CompletionChecker

	AuthHandler          *AuthHandler
	ProfileHandler       *ProfileHandler
	PricingHandler       *PricingHandler
	BookingHandler       *BookingHandler
	InventoryHandler     *InventoryHandler
	PublicBookingHandler *PublicBookingHandler
	ContactHandler       *ContactHandler
	UploadHandler        *UploadHandler
	AdminHandler         *AdminHandler

	// Health reports dependency status for /health. Nil means always healthy.
	Health func(ctx context.Context) utils.HealthStatus

	// CORSOrigins and RequestsPerMinute configure the global middleware.
	CORSOrigins       []string
	RequestsPerMinute int
}
