package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
)

const collectionRequests = "service_requests"

type RequestRepository struct {
	col *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{col: db.Collection(collectionRequests)}
}

type requestDoc struct {
	ID             string     `bson:"_id"`
	ClientID       string     `bson:"client_id"`
	ProfessionalID string     `bson:"professional_id"`
	Status         string     `bson:"status"`
	CreatedAt      time.Time  `bson:"created_at"`
	UpdatedAt      time.Time  `bson:"updated_at"`
	ApprovedAt     *time.Time `bson:"approved_at,omitempty"`
	FinishedAt     *time.Time `bson:"finished_at,omitempty"`
}

func toRequestDoc(r *domain.ServiceRequest) requestDoc {
	return requestDoc{
		ID:             r.ID,
		ClientID:       r.ClientID,
		ProfessionalID: r.ProfessionalID,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		ApprovedAt:     r.ApprovedAt,
		FinishedAt:     r.FinishedAt,
	}
}

func (d requestDoc) toDomain() *domain.ServiceRequest {
	return &domain.ServiceRequest{
		ID:             d.ID,
		ClientID:       d.ClientID,
		ProfessionalID: d.ProfessionalID,
		Status:         domain.RequestStatus(d.Status),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		ApprovedAt:     d.ApprovedAt,
		FinishedAt:     d.FinishedAt,
	}
}

func (r *RequestRepository) Create(ctx context.Context, request *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toRequestDoc(request)); err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}
	return request, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc requestDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find request: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns requests matching filter, newest first.
func (r *RequestRepository) List(ctx context.Context, filter ports.RequestFilter) ([]*domain.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ClientID != "" {
		query["client_id"] = filter.ClientID
	}
	if filter.ProfessionalID != "" {
		query["professional_id"] = filter.ProfessionalID
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.ServiceRequest
	for cursor.Next(ctx) {
		var doc requestDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode request: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *RequestRepository) Update(ctx context.Context, request *domain.ServiceRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":      string(request.Status),
		"updated_at":  request.UpdatedAt,
		"approved_at": request.ApprovedAt,
		"finished_at": request.FinishedAt,
	}}

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": request.ID}, update)
	return err
}

// EnsureIndexes creates necessary indexes on the service_requests collection.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "professional_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
