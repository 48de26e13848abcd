package recordsRepo

import (
	"context"
	"fmt"
	"time"

	"cabtour/database/repository"
	"cabtour/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a login record and returns its ID.
func (r *mongoLoginRepo) Create(ctx context.Context, record models.LoginRecord) (string, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return "", fmt.Errorf("failed to record login: %w", err)
	}
	return record.ID, nil
}

func (r *mongoLoginRepo) ListRecent(ctx context.Context, principalID string, limit int64) ([]models.LoginRecord, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if principalID != "" {
		filter["principalId"] = principalID
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list login history: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.LoginRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode login history: %w", err)
	}
	return records, nil
}

// Create inserts a contact message and returns its ID.
func (r *mongoContactRepo) Create(ctx context.Context, msg models.ContactMessage) (string, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	msg.IsRead = false
	msg.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return "", fmt.Errorf("failed to store contact message: %w", err)
	}
	return msg.ID, nil
}

func (r *mongoContactRepo) List(ctx context.Context, unreadOnly bool, page models.Page) ([]models.ContactMessage, int64, error) {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if unreadOnly {
		filter["isRead"] = false
	}
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Size))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	msgs := []models.ContactMessage{}
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode contact messages: %w", err)
	}
	return msgs, total, nil
}

func (r *mongoContactRepo) MarkRead(ctx context.Context, id string) error {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return fmt.Errorf("failed to mark message %s read: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("contact message %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

// DeleteByID removes a contact message by ID.
func (r *mongoContactRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete contact message %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("contact message %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (r *mongoContactRepo) CountUnread(ctx context.Context) (int64, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"isRead": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return n, nil
}
