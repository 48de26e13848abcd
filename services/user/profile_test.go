package user

import (
	"context"
	"errors"
	"testing"

	"cabtour/database/repository"
	userRepo "cabtour/database/repository/user"
	"cabtour/models"
	"cabtour/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	userRepo.UserRepository
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, id string, upd models.ProfileUpdate) (*models.User, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestGetCompletion(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	repo.On("GetByID", ctx, "u1").Return(&models.User{ID: "u1", Name: "Asha", Phone: "98765", Address: "Shimla"}, nil)
	repo.On("GetByID", ctx, "u2").Return(&models.User{ID: "u2", Name: "Ravi", Address: "  "}, nil)
	repo.On("GetByID", ctx, "gone").Return(nil, repository.ErrNotFound)

	pc, err := svc.GetCompletion(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, pc.Complete)

	pc, err = svc.GetCompletion(ctx, "u2")
	require.NoError(t, err)
	assert.False(t, pc.Complete)
	assert.Equal(t, []string{"phone", "address"}, pc.Missing)

	_, err = svc.GetCompletion(ctx, "gone")
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}

func TestUpdateProfileTrimsAndValidates(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	want := models.ProfileUpdate{Name: strPtr("Asha Verma"), Phone: strPtr("9876543210")}
	repo.On("UpdateProfile", ctx, "u1", want).
		Return(&models.User{ID: "u1", Name: "Asha Verma", Phone: "9876543210", Address: "Shimla"}, nil).Once()

	u, err := svc.UpdateProfile(ctx, "u1", models.ProfileUpdate{Name: strPtr("  Asha Verma "), Phone: strPtr("9876543210")})
	require.NoError(t, err)
	assert.True(t, u.Completion().Complete)

	_, err = svc.UpdateProfile(ctx, "u1", models.ProfileUpdate{Phone: strPtr("12")})
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	_, err = svc.UpdateProfile(ctx, "u1", models.ProfileUpdate{})
	assert.True(t, utils.IsKind(err, utils.KindValidation))
	repo.AssertExpectations(t)
}

func TestUpdateProfileClearingAFieldIsAllowed(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	repo.On("UpdateProfile", ctx, "u1", models.ProfileUpdate{Phone: strPtr("")}).
		Return(&models.User{ID: "u1", Name: "Asha", Address: "Shimla"}, nil)
	u, err := svc.UpdateProfile(ctx, "u1", models.ProfileUpdate{Phone: strPtr("   ")})
	require.NoError(t, err)
	assert.Equal(t, []string{"phone"}, u.Completion().Missing)
}

func TestUpdateProfileStoreErrors(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	repo.On("UpdateProfile", ctx, "gone", mock.Anything).Return(nil, repository.ErrNotFound)
	repo.On("UpdateProfile", ctx, "u1", mock.Anything).Return(nil, errors.New("server selection timeout"))

	_, err := svc.UpdateProfile(ctx, "gone", models.ProfileUpdate{Name: strPtr("Ravi")})
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
	_, err = svc.UpdateProfile(ctx, "u1", models.ProfileUpdate{Name: strPtr("Ravi")})
	assert.True(t, utils.IsKind(err, utils.KindDependency))
}
