package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/bodeppav/New-Expense-Tracker-Backend/apperror"
	"github.com/bodeppav/New-Expense-Tracker-Backend/models"
)

// CreateUser inserts a new user and fills in the assigned id. A duplicate
// username surfaces as a Conflict error via the unique index.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	result, err := s.collection(UserCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.NewConflict("User already exists")
		}
		return apperror.NewDatabase("Error registering user", err)
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		user.ID = id
	}
	return nil
}

// GetUserByUsername looks up a user by username. Returns a NotFound error
// when no such user exists.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.collection(UserCollection).FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound("User not found")
		}
		return nil, apperror.NewDatabase("Error fetching user", err)
	}
	return &user, nil
}
