package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"cabtour/models"
	"cabtour/utils"

	"go.uber.org/zap"
)

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := utils.ValidateVar("email", email, "required,email"); err != nil {
		return "", err
	}
	return email, nil
}

// RequestOTP issues a login code and queues the email carrying it.
func (s *DefaultAuthService) RequestOTP(ctx context.Context, email string) (*OTPIssued, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	code, err := s.OTP.Issue(ctx, email)
	if errors.Is(err, ErrOTPCooldown) {
		wait := s.OTP.CooldownRemaining(ctx, email)
		return nil, &utils.AppError{
			Kind:    utils.KindConflict,
			Code:    "otp_cooldown",
			Message: "please wait " + wait.Round(time.Second).String() + " before requesting another code",
		}
	} else if err != nil {
		utils.GetLogger().Error("Failed to issue OTP", zap.String("email", email), zap.Error(err))
		return nil, utils.Dependency("failed to issue login code", err)
	}

	if err := s.Notifier.SendLoginOTP(ctx, email, code, s.OTP.TTL()); err != nil {
		utils.GetLogger().Error("Failed to queue OTP email", zap.String("email", email), zap.Error(err))
		return nil, utils.Dependency("failed to send login code", err)
	}

	utils.GetLogger().Info("Login OTP issued", zap.String("email", email))
	return &OTPIssued{
		Email:      email,
		ExpiresIn:  int(s.OTP.TTL().Seconds()),
		ResendWait: int(s.OTP.cooldown.Seconds()),
	}, nil
}

// VerifyOTP consumes the code, creates the account on first login and
// returns a customer token.
func (s *DefaultAuthService) VerifyOTP(ctx context.Context, email, code string, meta LoginMeta) (*CustomerSession, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, utils.Validation("otp", "otp is required")
	}

	ok, err := s.OTP.Verify(ctx, email, code)
	if err != nil {
		return nil, utils.Dependency("failed to verify login code", err)
	}
	if !ok {
		return nil, utils.Unauthorized("invalid or expired code")
	}

	user, err := s.Users.UpsertOnLogin(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Failed to upsert user on login", zap.String("email", email), zap.Error(err))
		return nil, utils.Dependency("failed to sign in", err)
	}
	if !user.IsActive {
		return nil, utils.Forbidden("account is disabled")
	}

	token, err := utils.GenerateToken(s.Tokens.CustomerSecret, models.PrincipalCustomer, user.ID, user.Email, "", s.Tokens.CustomerTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, utils.Dependency("failed to sign in", err)
	}

	s.recordLogin(ctx, models.PrincipalCustomer, user.ID, user.Email, meta)

	pc := user.Completion()
	return &CustomerSession{
		Token:             token,
		User:              user,
		IsProfileComplete: pc.Complete,
		Completion:        pc,
	}, nil
}

// recordLogin writes the audit entry. Failures are logged only.
func (s *DefaultAuthService) recordLogin(ctx context.Context, kind, id, identifier string, meta LoginMeta) {
	if s.Logins == nil {
		return
	}
	_, err := s.Logins.Create(ctx, models.LoginRecord{
		PrincipalKind: kind,
		PrincipalID:   id,
		Identifier:    identifier,
		IP:            meta.IP,
		UserAgent:     meta.UserAgent,
	})
	if err != nil {
		utils.GetLogger().Warn("Failed to record login", zap.String("principal", id), zap.Error(err))
	}
}
