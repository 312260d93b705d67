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

const collectionFavorites = "favorites"

type FavoriteRepository struct {
	col *mongo.Collection
}

func NewFavoriteRepository(db *mongo.Database) *FavoriteRepository {
	return &FavoriteRepository{col: db.Collection(collectionFavorites)}
}

type favoriteDoc struct {
	ID             string    `bson:"_id"`
	UserID         string    `bson:"user_id"`
	ProfessionalID string    `bson:"professional_id"`
	CreatedAt      time.Time `bson:"created_at"`
}

func (d favoriteDoc) toDomain() *domain.Favorite {
	return &domain.Favorite{
		ID:             d.ID,
		UserID:         d.UserID,
		ProfessionalID: d.ProfessionalID,
		CreatedAt:      d.CreatedAt,
	}
}

// Upsert creates the favorite if missing and returns the stored row.
func (r *FavoriteRepository) Upsert(ctx context.Context, userID, professionalID string) (*domain.Favorite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID, "professional_id": professionalID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":             uuid.NewString(),
			"user_id":         userID,
			"professional_id": professionalID,
			"created_at":      time.Now().UTC(),
		},
	}

	var doc favoriteDoc
	err := r.col.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("upsert favorite: %w", err)
	}
	return doc.toDomain(), nil
}

// Delete removes the favorite; a missing favorite is a no-op.
func (r *FavoriteRepository) Delete(ctx context.Context, userID, professionalID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID, "professional_id": professionalID})
	return err
}

// ListByUser returns the user's favorites, newest first.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Favorite
	for cursor.Next(ctx) {
		var doc favoriteDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode favorite: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

// EnsureIndexes creates necessary indexes on the favorites collection.
func (r *FavoriteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "professional_id", Value: 1}},
			Options: uniqueIndex(),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
