package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"cabtour/utils"

	"github.com/redis/go-redis/v9"
)

const (
	otpKeyPrefix      = "otp:"
	cooldownKeyPrefix = "otp:cooldown:"
	attemptsKeyPrefix = "otp:attempts:"

	DefaultOTPLength      = 6
	DefaultOTPTTL         = 5 * time.Minute
	DefaultOTPCooldown    = 60 * time.Second
	DefaultOTPMaxAttempts = 5
)

// ErrOTPCooldown is returned when a code was issued for the email too recently.
var ErrOTPCooldown = errors.New("otp requested too recently")

// OTPStore keeps at most one live login code per email in Redis.
type OTPStore struct {
	client   redis.Cmdable
	ttl      time.Duration
	cooldown time.Duration
	length   int
	attempts int64
}

// NewOTPStore returns a store with the default code length, TTL and cooldown.
func NewOTPStore(client redis.Cmdable) *OTPStore {
	return &OTPStore{
		client:   client,
		ttl:      DefaultOTPTTL,
		cooldown: DefaultOTPCooldown,
		length:   DefaultOTPLength,
		attempts: DefaultOTPMaxAttempts,
	}
}

// TTL is how long an issued code stays valid.
func (s *OTPStore) TTL() time.Duration { return s.ttl }

// Issue generates a code for email, replacing any earlier one. It fails
// with ErrOTPCooldown while the resend cooldown is active.
func (s *OTPStore) Issue(ctx context.Context, email string) (string, error) {
	ok, err := s.client.SetNX(ctx, cooldownKeyPrefix+email, 1, s.cooldown).Result()
	if err != nil {
		return "", fmt.Errorf("failed to set otp cooldown: %w", err)
	}
	if !ok {
		return "", ErrOTPCooldown
	}

	code, err := utils.GenerateNumericOTP(s.length)
	if err != nil {
		return "", err
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, otpKeyPrefix+email, code, s.ttl)
	pipe.Del(ctx, attemptsKeyPrefix+email)
	if _, err := pipe.Exec(ctx); err != nil {
		s.client.Del(ctx, cooldownKeyPrefix+email)
		return "", fmt.Errorf("failed to store otp: %w", err)
	}
	return code, nil
}

// Verify consumes the code for email. A code is accepted at most once.
// A wrong code leaves the stored one in place until the failed attempts
// reach the limit, which burns it.
func (s *OTPStore) Verify(ctx context.Context, email, code string) (bool, error) {
	key := otpKeyPrefix + email
	stored, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to read otp: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return false, s.recordMiss(ctx, email)
	}
	deleted, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to consume otp: %w", err)
	}
	s.client.Del(ctx, attemptsKeyPrefix+email)
	// another verification consumed it first
	return deleted == 1, nil
}

// recordMiss counts a failed attempt and deletes the code once the limit is hit.
func (s *OTPStore) recordMiss(ctx context.Context, email string) error {
	key := attemptsKeyPrefix + email
	misses, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to count otp attempts: %w", err)
	}
	if misses == 1 {
		s.client.Expire(ctx, key, s.ttl)
	}
	if misses < s.attempts {
		return nil
	}
	if err := s.client.Del(ctx, otpKeyPrefix+email, key).Err(); err != nil {
		return fmt.Errorf("failed to burn otp: %w", err)
	}
	return nil
}

// CooldownRemaining reports how long until email may request a new code.
func (s *OTPStore) CooldownRemaining(ctx context.Context, email string) time.Duration {
	d, err := s.client.TTL(ctx, cooldownKeyPrefix+email).Result()
	if err != nil || d < 0 {
		return 0
	}
	return d
}
