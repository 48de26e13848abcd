package contact

import (
	"context"
	"fmt"
	"testing"

	"cabtour/database/repository"
	recordsRepo "cabtour/database/repository/records"
	"cabtour/models"
	"cabtour/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockContactRepo struct {
	recordsRepo.ContactRepository
	mock.Mock
}

func (m *mockContactRepo) Create(ctx context.Context, msg models.ContactMessage) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func (m *mockContactRepo) List(ctx context.Context, unread bool, p models.Page) ([]models.ContactMessage, int64, error) {
	args := m.Called(ctx, unread, p)
	return args.Get(0).([]models.ContactMessage), args.Get(1).(int64), args.Error(2)
}

func (m *mockContactRepo) MarkRead(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestSubmitNormalisesAndValidates(t *testing.T) {
	repo := new(mockContactRepo)
	svc := &DefaultContactService{Repo: repo}
	ctx := context.Background()

	repo.On("Create", ctx, models.ContactMessage{Name: "Kiran", Email: "kiran@example.com", Message: "Need a cab for 6 people"}).
		Return("m1", nil).Once()

	msg, err := svc.Submit(ctx, models.ContactMessage{Name: " Kiran", Email: "Kiran@Example.com ", Message: "Need a cab for 6 people ", IsRead: true})
	require.NoError(t, err)
	assert.Equal(t, "m1", msg.ID)
	assert.False(t, msg.IsRead)

	_, err = svc.Submit(ctx, models.ContactMessage{Name: "Kiran", Email: "not-mail", Message: "x"})
	assert.True(t, utils.IsKind(err, utils.KindValidation))
	repo.AssertExpectations(t)
}

func TestListAndMarkRead(t *testing.T) {
	repo := new(mockContactRepo)
	svc := &DefaultContactService{Repo: repo}
	ctx := context.Background()

	repo.On("List", ctx, true, models.Page{Number: 1, Size: 10}).Return([]models.ContactMessage{{ID: "m1"}}, int64(11), nil)
	repo.On("MarkRead", ctx, "m1").Return(nil)
	repo.On("MarkRead", ctx, "gone").Return(fmt.Errorf("message gone: %w", repository.ErrNotFound))

	msgs, pg, err := svc.List(ctx, true, models.Page{})
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
	assert.Equal(t, int64(2), pg.TotalPages)

	assert.NoError(t, svc.MarkRead(ctx, "m1"))
	assert.True(t, utils.IsKind(svc.MarkRead(ctx, "gone"), utils.KindNotFound))
}
