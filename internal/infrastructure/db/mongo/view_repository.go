package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/uzeed/marketplace-api/internal/core/domain"
)

const collectionViews = "profile_views"

type ViewRepository struct {
	col *mongo.Collection
}

func NewViewRepository(db *mongo.Database) *ViewRepository {
	return &ViewRepository{col: db.Collection(collectionViews)}
}

type viewDoc struct {
	ID        string    `bson:"_id"`
	ViewerID  string    `bson:"viewer_id"`
	ProfileID string    `bson:"profile_id"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *ViewRepository) Insert(ctx context.Context, v *domain.ProfileView) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id := v.ID
	if id == "" {
		id = uuid.NewString()
	}
	doc := viewDoc{ID: id, ViewerID: v.ViewerID, ProfileID: v.ProfileID, CreatedAt: v.CreatedAt}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert view: %w", err)
	}
	return nil
}

// ListByViewer returns the viewer's most recent views, newest first.
func (r *ViewRepository) ListByViewer(ctx context.Context, viewerID string, limit int) ([]*domain.ProfileView, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"viewer_id": viewerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("list views: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.ProfileView
	for cursor.Next(ctx) {
		var doc viewDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode view: %w", err)
		}
		out = append(out, &domain.ProfileView{
			ID:        doc.ID,
			ViewerID:  doc.ViewerID,
			ProfileID: doc.ProfileID,
			CreatedAt: doc.CreatedAt,
		})
	}
	return out, cursor.Err()
}

// EnsureIndexes creates necessary indexes on the profile_views collection.
func (r *ViewRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "viewer_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "profile_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
