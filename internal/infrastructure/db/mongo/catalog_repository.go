package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/uzeed/marketplace-api/internal/core/domain"
)

const (
	collectionCategories = "categories"
	collectionPlans      = "plans"
)

// CatalogRepository serves the category and plan reference collections.
type CatalogRepository struct {
	categories *mongo.Collection
	plans      *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{
		categories: db.Collection(collectionCategories),
		plans:      db.Collection(collectionPlans),
	}
}

type categoryDoc struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
	Type string `bson:"type"`
}

type planDoc struct {
	ID     string  `bson:"_id"`
	Tier   string  `bson:"tier"`
	Name   string  `bson:"name"`
	Price  float64 `bson:"price"`
	Active bool    `bson:"active"`
}

// ListCategories returns categories ordered by name, optionally filtered by type.
func (r *CatalogRepository) ListCategories(ctx context.Context, categoryType domain.CategoryType) ([]*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if categoryType != "" {
		query["type"] = string(categoryType)
	}

	cursor, err := r.categories.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Category
	for cursor.Next(ctx) {
		var doc categoryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		out = append(out, &domain.Category{ID: doc.ID, Name: doc.Name, Type: domain.CategoryType(doc.Type)})
	}
	return out, cursor.Err()
}

func (r *CatalogRepository) FindCategory(ctx context.Context, id string) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc categoryDoc
	if err := r.categories.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &domain.Category{ID: doc.ID, Name: doc.Name, Type: domain.CategoryType(doc.Type)}, nil
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := categoryDoc{ID: c.ID, Name: c.Name, Type: string(c.Type)}
	if _, err := r.categories.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.categories.UpdateOne(ctx, bson.M{"_id": c.ID}, bson.M{"$set": bson.M{"name": c.Name}})
	return err
}

// ListActivePlans returns active plans ordered by price ascending.
func (r *CatalogRepository) ListActivePlans(ctx context.Context) ([]*domain.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.plans.Find(ctx, bson.M{"active": true}, options.Find().SetSort(bson.D{{Key: "price", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Plan
	for cursor.Next(ctx) {
		var doc planDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode plan: %w", err)
		}
		out = append(out, &domain.Plan{ID: doc.ID, Tier: doc.Tier, Name: doc.Name, Price: doc.Price, Active: doc.Active})
	}
	return out, cursor.Err()
}

func (r *CatalogRepository) FindPlan(ctx context.Context, id string) (*domain.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc planDoc
	if err := r.plans.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("find plan: %w", err)
	}
	return &domain.Plan{ID: doc.ID, Tier: doc.Tier, Name: doc.Name, Price: doc.Price, Active: doc.Active}, nil
}

func (r *CatalogRepository) CreatePlan(ctx context.Context, p *domain.Plan) (*domain.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := planDoc{ID: p.ID, Tier: p.Tier, Name: p.Name, Price: p.Price, Active: p.Active}
	if _, err := r.plans.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert plan: %w", err)
	}
	return p, nil
}

func (r *CatalogRepository) UpdatePlan(ctx context.Context, p *domain.Plan) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.plans.UpdateOne(ctx, bson.M{"_id": p.ID}, bson.M{"$set": bson.M{
		"tier":   p.Tier,
		"name":   p.Name,
		"price":  p.Price,
		"active": p.Active,
	}})
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the catalog collections.
func (r *CatalogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	if _, err := r.categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "type", Value: 1}, {Key: "name", Value: 1}},
	}); err != nil {
		return err
	}
	_, err := r.plans.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "active", Value: 1}, {Key: "price", Value: 1}},
	})
	return err
}
