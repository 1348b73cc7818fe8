package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"onboarding-backend/internal/features/user/models"
	"onboarding-backend/internal/features/user/repository"
)

const usersCollection = "users"

type mongoRepository struct {
	col *mongo.Collection
}

// NewUserRepository creates a MongoDB-backed user repository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoRepository{col: db.Collection(usersCollection)}
}

func (r *mongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *mongoRepository) Save(ctx context.Context, user *models.User) error {
	res, err := r.col.ReplaceOne(ctx,
		bson.M{"email": user.Email},
		user,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return err
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}
