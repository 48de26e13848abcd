package contact

import (
	"context"
	"errors"
	"strings"

	"cabtour/database/repository"
	recordsRepo "cabtour/database/repository/records"
	"cabtour/models"
	"cabtour/services/booking"
	"cabtour/utils"

	"go.uber.org/zap"
)

// ContactService stores contact-form messages for the admin inbox.
type ContactService interface {
	Submit(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error)
	List(ctx context.Context, unreadOnly bool, page models.Page) ([]models.ContactMessage, models.Pagination, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CountUnread(ctx context.Context) (int64, error)
}

type DefaultContactService struct {
	Repo recordsRepo.ContactRepository
}

func (s *DefaultContactService) Submit(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error) {
	clean := models.ContactMessage{
		Name:    strings.TrimSpace(msg.Name),
		Email:   strings.ToLower(strings.TrimSpace(msg.Email)),
		Phone:   strings.TrimSpace(msg.Phone),
		Subject: strings.TrimSpace(msg.Subject),
		Message: strings.TrimSpace(msg.Message),
	}
	if err := utils.ValidateStruct(clean); err != nil {
		return nil, err
	}
	id, err := s.Repo.Create(ctx, clean)
	if err != nil {
		utils.GetLogger().Error("Failed to store contact message", zap.Error(err))
		return nil, utils.Dependency("failed to send message", err)
	}
	clean.ID = id
	return &clean, nil
}

func (s *DefaultContactService) List(ctx context.Context, unreadOnly bool, page models.Page) ([]models.ContactMessage, models.Pagination, error) {
	page = booking.NormalizePage(page)
	msgs, total, err := s.Repo.List(ctx, unreadOnly, page)
	if err != nil {
		return nil, models.Pagination{}, utils.Dependency("failed to list messages", err)
	}
	return msgs, models.NewPagination(page, total), nil
}

func (s *DefaultContactService) MarkRead(ctx context.Context, id string) error {
	return classify(s.Repo.MarkRead(ctx, id), "mark message read")
}

func (s *DefaultContactService) Delete(ctx context.Context, id string) error {
	return classify(s.Repo.DeleteByID(ctx, id), "delete message")
}

func (s *DefaultContactService) CountUnread(ctx context.Context) (int64, error) {
	n, err := s.Repo.CountUnread(ctx)
	if err != nil {
		return 0, utils.Dependency("failed to count messages", err)
	}
	return n, nil
}

func classify(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NotFound("message not found")
	}
	return utils.Dependency("failed to "+op, err)
}
