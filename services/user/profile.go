package user

import (
	"context"
	"errors"
	"strings"

	"cabtour/database/repository"
	"cabtour/models"
	"cabtour/utils"

	"go.uber.org/zap"
)

func (s *DefaultUserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NotFound("user not found")
	} else if err != nil {
		utils.GetLogger().Error("Failed to load user", zap.String("userID", userID), zap.Error(err))
		return nil, utils.Dependency("failed to load profile", err)
	}
	return u, nil
}

// UpdateProfile writes the non-nil fields. A field sent as blank clears it,
// which makes the profile incomplete again.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (*models.User, error) {
	if upd.Name == nil && upd.Phone == nil && upd.Address == nil {
		return nil, utils.Validation("", "no profile fields to update")
	}
	trimmed := models.ProfileUpdate{
		Name:    trimPtr(upd.Name),
		Phone:   trimPtr(upd.Phone),
		Address: trimPtr(upd.Address),
	}
	if err := utils.ValidateStruct(nonBlank(trimmed)); err != nil {
		return nil, err
	}

	u, err := s.Repo.UpdateProfile(ctx, userID, trimmed)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NotFound("user not found")
	} else if err != nil {
		utils.GetLogger().Error("Failed to update profile", zap.String("userID", userID), zap.Error(err))
		return nil, utils.Dependency("failed to update profile", err)
	}
	utils.GetLogger().Debug("Profile updated", zap.String("userID", userID), zap.Bool("complete", u.Completion().Complete))
	return u, nil
}

func (s *DefaultUserService) GetCompletion(ctx context.Context, userID string) (models.ProfileCompletion, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return models.ProfileCompletion{}, err
	}
	return u.Completion(), nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// nonBlank drops cleared fields so length rules only apply to real values.
func nonBlank(u models.ProfileUpdate) models.ProfileUpdate {
	for _, f := range []**string{&u.Name, &u.Phone, &u.Address} {
		if *f != nil && **f == "" {
			*f = nil
		}
	}
	return u
}
