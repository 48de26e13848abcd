package auth

import (
	"context"
	"errors"
	"strings"

	"cabtour/database/repository"
	"cabtour/models"
	"cabtour/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminLogin checks the password hash and returns an admin token.
func (s *DefaultAuthService) AdminLogin(ctx context.Context, adminID, password string, meta LoginMeta) (*AdminSession, error) {
	adminID = strings.TrimSpace(adminID)
	if adminID == "" || password == "" {
		return nil, utils.Validation("", "adminId and password are required")
	}

	admin, err := s.Admins.GetByAdminID(ctx, adminID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.Unauthorized("invalid admin credentials")
	} else if err != nil {
		utils.GetLogger().Error("Failed to fetch admin", zap.String("adminId", adminID), zap.Error(err))
		return nil, utils.Dependency("failed to sign in", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, utils.Unauthorized("invalid admin credentials")
	}
	if !admin.IsActive {
		return nil, utils.Forbidden("admin account is disabled")
	}

	token, err := utils.GenerateToken(s.Tokens.AdminSecret, models.PrincipalAdmin, admin.ID, "", admin.Role, s.Tokens.AdminTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate admin token", zap.Error(err))
		return nil, utils.Dependency("failed to sign in", err)
	}

	if err := s.Admins.SetLastLogin(ctx, admin.ID); err != nil {
		utils.GetLogger().Warn("Failed to update admin last login", zap.String("adminId", adminID), zap.Error(err))
	}
	s.recordLogin(ctx, models.PrincipalAdmin, admin.ID, admin.AdminID, meta)

	return &AdminSession{Token: token, AdminID: admin.AdminID, Role: admin.Role}, nil
}

// HashPassword returns the bcrypt hash used for admin accounts.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", utils.Validation("password", "password must be at least 8 characters long")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
