package recordsRepo

import (
	"context"

	"cabtour/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// LoginHistoryRepository keeps the sign-in audit trail.
type LoginHistoryRepository interface {
	Create(ctx context.Context, record models.LoginRecord) (string, error)
	// ListRecent returns the latest records, optionally for one principal.
	ListRecent(ctx context.Context, principalID string, limit int64) ([]models.LoginRecord, error)
	EnsureIndexes(ctx context.Context) error
}

// ContactRepository stores messages from the public contact form.
type ContactRepository interface {
	Create(ctx context.Context, msg models.ContactMessage) (string, error)
	List(ctx context.Context, unreadOnly bool, page models.Page) ([]models.ContactMessage, int64, error)
	MarkRead(ctx context.Context, id string) error
	DeleteByID(ctx context.Context, id string) error
	CountUnread(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoLoginRepo struct {
	coll *mongo.Collection
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoLoginRepo returns a new LoginHistoryRepository instance using MongoDB.
func NewMongoLoginRepo(db *mongo.Database) LoginHistoryRepository {
	return &mongoLoginRepo{coll: db.Collection("loginhistory")}
}

// NewMongoContactRepo returns a new ContactRepository instance using MongoDB.
func NewMongoContactRepo(db *mongo.Database) ContactRepository {
	return &mongoContactRepo{coll: db.Collection("contactmessages")}
}
