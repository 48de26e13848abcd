package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"cabtour/database/repository"
	adminRepo "cabtour/database/repository/admin"
	recordsRepo "cabtour/database/repository/records"
	userRepo "cabtour/database/repository/user"
	"cabtour/models"
	"cabtour/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type otpMail struct {
	email string
	code  string
	ttl   time.Duration
}

// otpNotifier captures login codes; every other notification is ignored.
type otpNotifier struct {
	mu   sync.Mutex
	sent []otpMail
	err  error
}

func (n *otpNotifier) SendConfirmation(context.Context, models.BookingSnapshot) error  { return nil }
func (n *otpNotifier) SendTripStarted(context.Context, models.BookingSnapshot) error   { return nil }
func (n *otpNotifier) SendTripCompleted(context.Context, models.BookingSnapshot) error { return nil }
func (n *otpNotifier) SendCancellation(context.Context, models.BookingSnapshot) error  { return nil }
func (n *otpNotifier) NotifyAdminNewBooking(context.Context, models.BookingSnapshot) error {
	return nil
}
func (n *otpNotifier) NotifyAdminPublicBooking(context.Context, models.BookingSnapshot) error {
	return nil
}
func (n *otpNotifier) SendLoginOTP(_ context.Context, email, code string, ttl time.Duration) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, otpMail{email, code, ttl})
	return nil
}

func (n *otpNotifier) last() otpMail {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sent[len(n.sent)-1]
}

type memUsers struct {
	userRepo.UserRepository
	mu      sync.Mutex
	byEmail map[string]*models.User
}

func (m *memUsers) UpsertOnLogin(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byEmail[email]
	if !ok {
		u = &models.User{ID: "user-" + email, Email: email, Role: models.RoleCustomer, IsActive: true}
		m.byEmail[email] = u
	}
	now := time.Now()
	u.LastLogin = &now
	cp := *u
	return &cp, nil
}

type memAdmins struct {
	adminRepo.AdminRepository
	admins     map[string]*models.Admin
	lastLogins int
}

func (m *memAdmins) GetByAdminID(_ context.Context, adminID string) (*models.Admin, error) {
	a, ok := m.admins[adminID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAdmins) SetLastLogin(context.Context, string) error {
	m.lastLogins++
	return nil
}

type memLogins struct {
	recordsRepo.LoginHistoryRepository
	mu      sync.Mutex
	records []models.LoginRecord
}

func (m *memLogins) Create(_ context.Context, r models.LoginRecord) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return "rec", nil
}

type authFixture struct {
	svc      *DefaultAuthService
	redis    *miniredis.Miniredis
	notifier *otpNotifier
	users    *memUsers
	admins   *memAdmins
	logins   *memLogins
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	f := &authFixture{
		redis:    mr,
		notifier: &otpNotifier{},
		users:    &memUsers{byEmail: map[string]*models.User{}},
		admins: &memAdmins{admins: map[string]*models.Admin{
			"ops":    {ID: "a-1", AdminID: "ops", PasswordHash: string(hash), Role: models.RoleAdmin, IsActive: true},
			"former": {ID: "a-2", AdminID: "former", PasswordHash: string(hash), Role: models.RoleAdmin, IsActive: false},
		}},
		logins: &memLogins{},
	}
	f.svc = &DefaultAuthService{
		OTP:      NewOTPStore(client),
		Users:    f.users,
		Admins:   f.admins,
		Logins:   f.logins,
		Notifier: f.notifier,
		Tokens: TokenConfig{
			CustomerSecret: []byte("customer-secret"),
			AdminSecret:    []byte("admin-secret"),
			CustomerTTL:    time.Hour,
			AdminTTL:       time.Hour,
		},
	}
	return f
}

func TestOTPLoginFlow(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	issued, err := f.svc.RequestOTP(ctx, "  Asha@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", issued.Email)
	assert.Equal(t, 300, issued.ExpiresIn)

	mail := f.notifier.last()
	assert.Equal(t, "asha@example.com", mail.email)
	assert.Len(t, mail.code, DefaultOTPLength)
	assert.Equal(t, DefaultOTPTTL, mail.ttl)
	assert.True(t, f.redis.Exists("otp:asha@example.com"))

	sess, err := f.svc.VerifyOTP(ctx, "asha@example.com", mail.code, LoginMeta{IP: "203.0.113.7", UserAgent: "test"})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.False(t, sess.IsProfileComplete)
	assert.Equal(t, []string{"name", "phone", "address"}, sess.Completion.Missing)
	assert.False(t, f.redis.Exists("otp:asha@example.com"), "code is consumed")

	require.Len(t, f.logins.records, 1)
	assert.Equal(t, models.PrincipalCustomer, f.logins.records[0].PrincipalKind)
	assert.Equal(t, "203.0.113.7", f.logins.records[0].IP)

	p, err := f.svc.VerifyCustomer(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, p.ID)
	assert.Equal(t, "asha@example.com", p.Email)

	_, err = f.svc.VerifyOTP(ctx, "asha@example.com", mail.code, LoginMeta{})
	assert.True(t, utils.IsKind(err, utils.KindUnauthorized), "a code works once")
}

func TestOTPCooldownAndExpiry(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.RequestOTP(ctx, "ravi@example.com")
	require.NoError(t, err)
	first := f.notifier.last().code

	_, err = f.svc.RequestOTP(ctx, "ravi@example.com")
	assert.True(t, utils.HasCode(err, "otp_cooldown"))

	f.redis.FastForward(DefaultOTPCooldown + time.Second)
	_, err = f.svc.RequestOTP(ctx, "ravi@example.com")
	require.NoError(t, err)
	second := f.notifier.last().code
	stored, _ := f.redis.Get("otp:ravi@example.com")
	assert.Equal(t, second, stored, "reissue replaces the earlier code")
	if first != second {
		_, err = f.svc.VerifyOTP(ctx, "ravi@example.com", first, LoginMeta{})
		assert.True(t, utils.IsKind(err, utils.KindUnauthorized))
	}

	f.redis.FastForward(DefaultOTPTTL + time.Second)
	_, err = f.svc.VerifyOTP(ctx, "ravi@example.com", second, LoginMeta{})
	assert.True(t, utils.IsKind(err, utils.KindUnauthorized), "expired")
}

func TestOTPWrongCodeKeepsStoredCode(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, f.redis.Set("otp:meera@example.com", "123456"))

	_, err := f.svc.VerifyOTP(ctx, "meera@example.com", "654321", LoginMeta{})
	assert.True(t, utils.IsKind(err, utils.KindUnauthorized))
	assert.True(t, f.redis.Exists("otp:meera@example.com"))

	_, err = f.svc.VerifyOTP(ctx, "meera@example.com", "123456", LoginMeta{})
	assert.NoError(t, err)
}

func TestOTPBurnedAfterRepeatedMisses(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, f.redis.Set("otp:kiran@example.com", "123456"))

	for i := 1; i < DefaultOTPMaxAttempts; i++ {
		_, err := f.svc.VerifyOTP(ctx, "kiran@example.com", "000000", LoginMeta{})
		assert.True(t, utils.IsKind(err, utils.KindUnauthorized))
		assert.True(t, f.redis.Exists("otp:kiran@example.com"), "miss %d keeps the code", i)
	}
	ttl := f.redis.TTL("otp:attempts:kiran@example.com")
	assert.True(t, ttl > 0 && ttl <= DefaultOTPTTL, "attempt counter expires with the code")

	_, err := f.svc.VerifyOTP(ctx, "kiran@example.com", "000000", LoginMeta{})
	assert.True(t, utils.IsKind(err, utils.KindUnauthorized))
	assert.False(t, f.redis.Exists("otp:kiran@example.com"), "limit reached burns the code")
	assert.False(t, f.redis.Exists("otp:attempts:kiran@example.com"))

	_, err = f.svc.VerifyOTP(ctx, "kiran@example.com", "123456", LoginMeta{})
	assert.True(t, utils.IsKind(err, utils.KindUnauthorized), "the right code no longer works")
}

func TestOTPReissueResetsAttempts(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	_, err := f.svc.RequestOTP(ctx, "lata@example.com")
	require.NoError(t, err)

	_, err = f.svc.VerifyOTP(ctx, "lata@example.com", "not-it", LoginMeta{})
	require.True(t, utils.IsKind(err, utils.KindUnauthorized))
	assert.True(t, f.redis.Exists("otp:attempts:lata@example.com"))

	f.redis.FastForward(DefaultOTPCooldown + time.Second)
	_, err = f.svc.RequestOTP(ctx, "lata@example.com")
	require.NoError(t, err)
	assert.False(t, f.redis.Exists("otp:attempts:lata@example.com"))

	_, err = f.svc.VerifyOTP(ctx, "lata@example.com", f.notifier.last().code, LoginMeta{})
	require.NoError(t, err)
}

func TestOTPConcurrentVerifyAcceptsOnce(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.redis.Set("otp:dev@example.com", "111111"))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			accepted, err := f.svc.OTP.Verify(context.Background(), "dev@example.com", "111111")
			assert.NoError(t, err)
			if accepted {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, ok)
}

func TestRequestOTPValidationAndDispatchFailure(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.svc.RequestOTP(context.Background(), "not-an-email")
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	f.notifier.err = assert.AnError
	_, err = f.svc.RequestOTP(context.Background(), "x@example.com")
	assert.True(t, utils.IsKind(err, utils.KindDependency))
}

func TestAdminLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	sess, err := f.svc.AdminLogin(ctx, "ops", "s3cret-pass", LoginMeta{IP: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, sess.Role)
	assert.Equal(t, 1, f.admins.lastLogins)
	require.Len(t, f.logins.records, 1)
	assert.Equal(t, "ops", f.logins.records[0].Identifier)

	p, err := f.svc.VerifyAdmin(sess.Token)
	require.NoError(t, err)
	assert.True(t, p.IsAdmin())
	assert.Equal(t, "a-1", p.ID)

	_, err = f.svc.VerifyCustomer(sess.Token)
	assert.True(t, utils.IsKind(err, utils.KindUnauthorized), "admin token is not a customer token")

	_, err = f.svc.AdminLogin(ctx, "ops", "wrong", LoginMeta{})
	assert.True(t, utils.IsKind(err, utils.KindUnauthorized))
	_, err = f.svc.AdminLogin(ctx, "nobody", "s3cret-pass", LoginMeta{})
	assert.True(t, utils.IsKind(err, utils.KindUnauthorized))
	_, err = f.svc.AdminLogin(ctx, "former", "s3cret-pass", LoginMeta{})
	assert.True(t, utils.IsKind(err, utils.KindForbidden))
	_, err = f.svc.AdminLogin(ctx, "", "", LoginMeta{})
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}

func TestCustomerTokenRejectedForAdmin(t *testing.T) {
	f := newAuthFixture(t)
	f.svc.Tokens.AdminSecret = f.svc.Tokens.CustomerSecret
	token, err := utils.GenerateToken(f.svc.Tokens.CustomerSecret, models.PrincipalCustomer, "u1", "u1@example.com", "", time.Hour)
	require.NoError(t, err)

	_, err = f.svc.VerifyAdmin(token)
	assert.True(t, utils.IsKind(err, utils.KindUnauthorized))

	expired, err := utils.GenerateToken(f.svc.Tokens.CustomerSecret, models.PrincipalCustomer, "u1", "", "", -time.Minute)
	require.NoError(t, err)
	_, err = f.svc.VerifyCustomer(expired)
	assert.True(t, utils.IsKind(err, utils.KindUnauthorized))
	_, err = f.svc.VerifyCustomer("")
	assert.True(t, utils.IsKind(err, utils.KindUnauthorized))
}

func TestHashPassword(t *testing.T) {
	_, err := HashPassword("short")
	assert.Error(t, err)
	hash, err := HashPassword("long-enough")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("long-enough")))
}
