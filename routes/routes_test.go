package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cabtour/database/repository"
	"cabtour/handlers"
	"cabtour/models"
	"cabtour/services/booking"
	"cabtour/services/pricing"
	"cabtour/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokens struct{}

func (tokens) VerifyCustomer(token string) (models.Principal, error) {
	if token == "customer" {
		return models.Principal{Kind: models.PrincipalCustomer, ID: "u2", Role: models.RoleCustomer}, nil
	}
	return models.Principal{}, utils.Unauthorized("invalid or expired token")
}

func (tokens) VerifyAdmin(token string) (models.Principal, error) {
	if token == "admin" {
		return models.Principal{Kind: models.PrincipalAdmin, ID: "ops", Role: models.RoleAdmin}, nil
	}
	return models.Principal{}, utils.Unauthorized("invalid or expired token")
}

type accounts struct{}

func (accounts) GetByID(_ context.Context, id string) (*models.User, error) {
	if id == "u2" {
		return &models.User{ID: "u2", Name: "Ravi", Address: "Sector 17", IsActive: true}, nil
	}
	return nil, repository.ErrNotFound
}

type profiles struct{}

func (profiles) GetCompletion(_ context.Context, id string) (models.ProfileCompletion, error) {
	u, err := accounts{}.GetByID(context.Background(), id)
	if err != nil {
		return models.ProfileCompletion{}, err
	}
	return u.Completion(), nil
}

type countingBookings struct {
	booking.BookingService
	creates int
}

func (b *countingBookings) CreateBooking(context.Context, models.Principal, models.BookingRequest) (*models.Booking, error) {
	b.creates++
	return &models.Booking{ID: "b1"}, nil
}

type staticQuotes struct {
	pricing.PricingService
}

func (staticQuotes) Quote(_ context.Context, f models.QuoteFilter) ([]models.CabQuote, error) {
	return []models.CabQuote{{CabOffering: models.CabOffering{From: f.From, To: f.To, BasePrice: 2000, IncrementPercent: 10}, DisplayPrice: 2200}}, nil
}

func newRouter(t *testing.T, healthy bool) (*gin.Engine, *countingBookings) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	bookings := &countingBookings{}
	hb := &handlers.HandlerBundle{
		Tokens:               tokens{},
		Accounts:             accounts{},
		Profiles:             profiles{},
		AuthHandler:          handlers.NewAuthHandler(nil),
		ProfileHandler:       handlers.NewProfileHandler(nil),
		PricingHandler:       handlers.NewPricingHandler(staticQuotes{}),
		BookingHandler:       handlers.NewBookingHandler(bookings, nil),
		InventoryHandler:     handlers.NewInventoryHandler(nil),
		PublicBookingHandler: handlers.NewPublicBookingHandler(nil),
		ContactHandler:       handlers.NewContactHandler(nil),
		UploadHandler:        handlers.NewUploadHandler(nil),
		AdminHandler:         handlers.NewAdminHandler(nil),
		Health: func(context.Context) utils.HealthStatus {
			return utils.HealthStatus{Mongo: healthy, CheckedAt: time.Now()}
		},
		RequestsPerMinute: 1000,
	}
	r := gin.New()
	RegisterRoutes(r, hb)
	return r, bookings
}

func call(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIncompleteProfileCannotBook(t *testing.T) {
	r, bookings := newRouter(t, true)

	w := call(r, http.MethodPost, "/api/bookings", "customer", gin.H{
		"bookingType": "cab", "cabId": "c1", "cabCategory": "one-way", "travelDate": "2026-11-01",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "profile_incomplete", body.Code)
	assert.Equal(t, "phone", body.Field)
	assert.Zero(t, bookings.creates, "no booking may be created")
}

func TestBookingRoutesRequireCustomerToken(t *testing.T) {
	r, _ := newRouter(t, true)

	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, "/api/bookings", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, "/api/bookings", "admin", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, "/api/admin/dashboard", "customer", nil).Code)
}

func TestPublicQuoteRoute(t *testing.T) {
	r, _ := newRouter(t, true)

	w := call(r, http.MethodGet, "/api/quote?category=one-way&from=Mohali&to=Delhi", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"displayPrice":2200`)
}

func TestHealthAndMetrics(t *testing.T) {
	r, _ := newRouter(t, true)
	w := call(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = call(r, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	down, _ := newRouter(t, false)
	w = call(down, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"degraded"`)
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newRouter(t, true)
	req := httptest.NewRequest(http.MethodOptions, "/api/quote", nil)
	req.Header.Set("Origin", "https://cabtour.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
