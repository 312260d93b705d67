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

const collectionUsers = "users"

// UserRepository implements ports.UserRepository using MongoDB. It also
// serves as the presence store: the isOnline flag lives on the user document.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDoc struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	DisplayName  string    `bson:"display_name"`
	Username     string    `bson:"username,omitempty"`
	AvatarURL    string    `bson:"avatar_url,omitempty"`
	CoverURL     string    `bson:"cover_url,omitempty"`
	Bio          string    `bson:"bio,omitempty"`
	Gender       string    `bson:"gender,omitempty"`
	City         string    `bson:"city,omitempty"`
	Address      string    `bson:"address,omitempty"`
	CategoryID   string    `bson:"category_id,omitempty"`
	ServiceDesc  string    `bson:"service_description,omitempty"`
	PlanTier     string    `bson:"plan_tier,omitempty"`
	Latitude     *float64  `bson:"latitude,omitempty"`
	Longitude    *float64  `bson:"longitude,omitempty"`
	IsActive     bool      `bson:"is_active"`
	IsOnline     bool      `bson:"is_online"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		DisplayName:  u.DisplayName,
		Username:     u.Username,
		AvatarURL:    u.AvatarURL,
		CoverURL:     u.CoverURL,
		Bio:          u.Bio,
		Gender:       u.Gender,
		City:         u.City,
		Address:      u.Address,
		CategoryID:   u.CategoryID,
		ServiceDesc:  u.ServiceDesc,
		PlanTier:     u.PlanTier,
		Latitude:     u.Latitude,
		Longitude:    u.Longitude,
		IsActive:     u.IsActive,
		IsOnline:     u.IsOnline,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		DisplayName:  d.DisplayName,
		Username:     d.Username,
		AvatarURL:    d.AvatarURL,
		CoverURL:     d.CoverURL,
		Bio:          d.Bio,
		Gender:       d.Gender,
		City:         d.City,
		Address:      d.Address,
		CategoryID:   d.CategoryID,
		ServiceDesc:  d.ServiceDesc,
		PlanTier:     d.PlanTier,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		IsActive:     d.IsActive,
		IsOnline:     d.IsOnline,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toUserDoc(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// ListProfessionals applies the exact-match filters in the query itself;
// plan/radius/rating filtering happens in the service layer. Results come
// back in storage order.
func (r *UserRepository) ListProfessionals(ctx context.Context, filter ports.ProfessionalFilter) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"role": domain.RoleProfessional}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}
	if filter.Gender != "" {
		query["gender"] = filter.Gender
	}
	if filter.Active != nil {
		query["is_active"] = *filter.Active
	}

	cursor, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*domain.User
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode professional: %w", err)
		}
		users = append(users, doc.toDomain())
	}
	return users, cursor.Err()
}

func (r *UserRepository) SetOnline(ctx context.Context, userID string, online bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{"is_online": online}})
	return err
}

func (r *UserRepository) SetActive(ctx context.Context, userID string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{"is_active": active, "updated_at": time.Now().UTC()},
	})
	return err
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates necessary indexes on the users collection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "role", Value: 1}}},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
