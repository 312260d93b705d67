package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/uzeed/marketplace-api/internal/core/domain"
)

const collectionRatings = "ratings"

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{col: db.Collection(collectionRatings)}
}

type ratingDoc struct {
	ID        string    `bson:"_id"`
	Target    string    `bson:"target"`
	TargetID  string    `bson:"target_id"`
	RaterID   string    `bson:"rater_id"`
	Score     int       `bson:"score"`
	Comment   string    `bson:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d ratingDoc) toDomain() *domain.Rating {
	return &domain.Rating{
		ID:        d.ID,
		Target:    domain.RatingTarget(d.Target),
		TargetID:  d.TargetID,
		RaterID:   d.RaterID,
		Score:     d.Score,
		Comment:   d.Comment,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Upsert writes the rater's score for the target, overwriting any previous
// score by the same rater. The stored row is returned.
func (r *RatingRepository) Upsert(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"target":    string(rating.Target),
		"target_id": rating.TargetID,
		"rater_id":  rating.RaterID,
	}
	update := bson.M{
		"$set": bson.M{
			"score":      rating.Score,
			"comment":    rating.Comment,
			"updated_at": rating.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":        rating.ID,
			"target":     string(rating.Target),
			"target_id":  rating.TargetID,
			"rater_id":   rating.RaterID,
			"created_at": rating.CreatedAt,
		},
	}

	var doc ratingDoc
	err := r.col.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("upsert rating: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RatingRepository) ListByTarget(ctx context.Context, target domain.RatingTarget, targetID string) ([]*domain.Rating, error) {
	grouped, err := r.ListByTargets(ctx, target, []string{targetID})
	if err != nil {
		return nil, err
	}
	return grouped[targetID], nil
}

// ListByTargets fetches ratings for a batch of targets with one query and
// groups them by target id.
func (r *RatingRepository) ListByTargets(ctx context.Context, target domain.RatingTarget, targetIDs []string) (map[string][]*domain.Rating, error) {
	grouped := make(map[string][]*domain.Rating, len(targetIDs))
	if len(targetIDs) == 0 {
		return grouped, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{
		"target":    string(target),
		"target_id": bson.M{"$in": targetIDs},
	})
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc ratingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode rating: %w", err)
		}
		grouped[doc.TargetID] = append(grouped[doc.TargetID], doc.toDomain())
	}
	return grouped, cursor.Err()
}

// EnsureIndexes creates necessary indexes on the ratings collection.
func (r *RatingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "target", Value: 1}, {Key: "target_id", Value: 1}, {Key: "rater_id", Value: 1}},
			Options: uniqueIndex(),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
