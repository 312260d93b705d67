package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
)

const collectionEstablishments = "establishments"

type EstablishmentRepository struct {
	col *mongo.Collection
}

func NewEstablishmentRepository(db *mongo.Database) *EstablishmentRepository {
	return &EstablishmentRepository{col: db.Collection(collectionEstablishments)}
}

type establishmentDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	City        string    `bson:"city,omitempty"`
	Address     string    `bson:"address,omitempty"`
	Phone       string    `bson:"phone,omitempty"`
	Description string    `bson:"description,omitempty"`
	CategoryID  string    `bson:"category_id,omitempty"`
	Latitude    *float64  `bson:"latitude,omitempty"`
	Longitude   *float64  `bson:"longitude,omitempty"`
	IsActive    bool      `bson:"is_active"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (d establishmentDoc) toDomain() *domain.Establishment {
	return &domain.Establishment{
		ID:          d.ID,
		Name:        d.Name,
		City:        d.City,
		Address:     d.Address,
		Phone:       d.Phone,
		Description: d.Description,
		CategoryID:  d.CategoryID,
		Latitude:    d.Latitude,
		Longitude:   d.Longitude,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *EstablishmentRepository) Create(ctx context.Context, e *domain.Establishment) (*domain.Establishment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := establishmentDoc{
		ID:          e.ID,
		Name:        e.Name,
		City:        e.City,
		Address:     e.Address,
		Phone:       e.Phone,
		Description: e.Description,
		CategoryID:  e.CategoryID,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert establishment: %w", err)
	}
	return e, nil
}

func (r *EstablishmentRepository) FindByID(ctx context.Context, id string) (*domain.Establishment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc establishmentDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEstablishmentNotFound
		}
		return nil, fmt.Errorf("find establishment: %w", err)
	}
	return doc.toDomain(), nil
}

// Update overwrites the mutable fields of an existing establishment.
func (r *EstablishmentRepository) Update(ctx context.Context, e *domain.Establishment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": e.ID}, bson.M{"$set": bson.M{
		"name":        e.Name,
		"city":        e.City,
		"address":     e.Address,
		"phone":       e.Phone,
		"description": e.Description,
		"category_id": e.CategoryID,
		"latitude":    e.Latitude,
		"longitude":   e.Longitude,
		"is_active":   e.IsActive,
	}})
	if err != nil {
		return fmt.Errorf("update establishment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEstablishmentNotFound
	}
	return nil
}

// List returns establishments in storage order, filtered by category when set.
func (r *EstablishmentRepository) List(ctx context.Context, filter ports.EstablishmentFilter) ([]*domain.Establishment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}

	cursor, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list establishments: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Establishment
	for cursor.Next(ctx) {
		var doc establishmentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode establishment: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *EstablishmentRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates necessary indexes on the establishments collection.
func (r *EstablishmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
