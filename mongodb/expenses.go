package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/bodeppav/New-Expense-Tracker-Backend/apperror"
	"github.com/bodeppav/New-Expense-Tracker-Backend/models"
)

// CreateExpense inserts a new expense and returns it with the assigned id.
func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	result, err := s.collection(ExpenseCollection).InsertOne(ctx, expense)
	if err != nil {
		return nil, apperror.NewDatabase("Error adding expense", err)
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		expense.ID = id
	}
	return expense, nil
}

// ListExpenses returns every expense owned by userID in natural store order.
// The result is never nil so an empty set serializes as [].
func (s *Store) ListExpenses(ctx context.Context, userID string) ([]models.Expense, error) {
	cursor, err := s.collection(ExpenseCollection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, apperror.NewDatabase("Failed to fetch expenses", err)
	}
	defer cursor.Close(ctx)

	expenses := []models.Expense{}
	for cursor.Next(ctx) {
		var expense models.Expense
		if err := cursor.Decode(&expense); err != nil {
			return nil, apperror.NewDatabase("Error decoding expense", err)
		}
		expenses = append(expenses, expense)
	}
	if err := cursor.Err(); err != nil {
		return nil, apperror.NewDatabase("Failed to fetch expenses", err)
	}

	return expenses, nil
}

// UpdateExpense replaces the four mutable fields of the expense identified by
// id and returns the post-update record. The owner field is never touched.
func (s *Store) UpdateExpense(ctx context.Context, id, title string, amount float64, date, category string) (*models.Expense, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.NewNotFound("Expense not found")
	}

	update := bson.M{"$set": bson.M{
		"title":    title,
		"amount":   amount,
		"date":     date,
		"category": category,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Expense
	err = s.collection(ExpenseCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).
		Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound("Expense not found")
		}
		return nil, apperror.NewDatabase("Error updating expense", err)
	}
	return &updated, nil
}

// DeleteExpense removes the expense identified by id and returns the deleted
// record for confirmation.
func (s *Store) DeleteExpense(ctx context.Context, id string) (*models.Expense, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.NewNotFound("Expense not found")
	}

	var deleted models.Expense
	err = s.collection(ExpenseCollection).
		FindOneAndDelete(ctx, bson.M{"_id": objectID}).
		Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound("Expense not found")
		}
		return nil, apperror.NewDatabase("Error deleting expense", err)
	}
	return &deleted, nil
}
