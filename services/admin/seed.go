package admin

import (
	"context"
	"errors"
	"strings"

	"cabtour/database/repository"
	"cabtour/models"
	"cabtour/services/auth"
	"cabtour/utils"

	"go.uber.org/zap"
)

// SeedAdmin creates an admin account, or with reset set, replaces the
// password of an existing one.
func (s *DefaultAdminService) SeedAdmin(ctx context.Context, adminID, password, role string, reset bool) (*models.Admin, error) {
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return nil, utils.Validation("adminId", "adminId is required")
	}
	if role == "" {
		role = models.RoleAdmin
	}
	if role != models.RoleAdmin && role != models.RoleSuperAdmin {
		return nil, utils.Validation("role", "role must be one of: admin superadmin")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	existing, err := s.Admins.GetByAdminID(ctx, adminID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		a := &models.Admin{AdminID: adminID, PasswordHash: hash, Role: role, IsActive: true}
		if err := s.Admins.Create(ctx, a); err != nil {
			return nil, dependency("create admin", err)
		}
		utils.GetLogger().Info("Admin created", zap.String("adminId", adminID), zap.String("role", role))
		return a, nil
	case err != nil:
		return nil, dependency("load admin", err)
	case !reset:
		return nil, utils.Conflict("admin_exists", "admin "+adminID+" already exists")
	}

	if err := s.Admins.SetPassword(ctx, adminID, hash, role); err != nil {
		return nil, dependency("reset admin password", err)
	}
	existing.PasswordHash, existing.Role, existing.IsActive = hash, role, true
	utils.GetLogger().Info("Admin password reset", zap.String("adminId", adminID))
	return existing, nil
}
