package inventory

import (
	"context"
	"strings"

	"cabtour/models"
	"cabtour/utils"
)

func prepareReview(r *models.Review) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Comment = strings.TrimSpace(r.Comment)
	return utils.ValidateStruct(r)
}

func (s *DefaultInventoryService) ListReviews(ctx context.Context, activeOnly bool) ([]models.Review, error) {
	reviews, err := s.Reviews.List(ctx, activeOnly)
	if err != nil {
		return nil, storeError("review", "list", err)
	}
	return reviews, nil
}

func (s *DefaultInventoryService) CreateReview(ctx context.Context, review models.Review) (*models.Review, error) {
	review.ID = ""
	if err := prepareReview(&review); err != nil {
		return nil, err
	}
	if err := s.Reviews.Create(ctx, &review); err != nil {
		return nil, storeError("review", "create", err)
	}
	return &review, nil
}

func (s *DefaultInventoryService) UpdateReview(ctx context.Context, id string, review models.Review) (*models.Review, error) {
	review.ID = id
	if err := prepareReview(&review); err != nil {
		return nil, err
	}
	if err := s.Reviews.Update(ctx, &review); err != nil {
		return nil, storeError("review", "update", err)
	}
	updated, err := s.Reviews.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("review", "load", err)
	}
	return updated, nil
}

func (s *DefaultInventoryService) SetReviewActive(ctx context.Context, id string, active bool) (*models.Review, error) {
	r, err := s.Reviews.SetActive(ctx, id, active)
	if err != nil {
		return nil, storeError("review", "update", err)
	}
	return r, nil
}

func (s *DefaultInventoryService) DeleteReview(ctx context.Context, id string) error {
	if err := s.Reviews.Delete(ctx, id); err != nil {
		return storeError("review", "delete", err)
	}
	return nil
}
