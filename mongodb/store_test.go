package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/bodeppav/New-Expense-Tracker-Backend/apperror"
	"github.com/bodeppav/New-Expense-Tracker-Backend/config"
	"github.com/bodeppav/New-Expense-Tracker-Backend/models"
)

// StoreSuite runs against a real MongoDB instance and is skipped unless
// MONGO_URI is set. Each test starts from empty collections.
type StoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func (s *StoreSuite) SetupSuite() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		s.T().Skip("MONGO_URI not set; skipping MongoDB integration tests")
	}

	s.ctx = context.Background()
	ctx, cancel := context.WithTimeout(s.ctx, 10*time.Second)
	defer cancel()

	store, err := Connect(ctx, config.MongoConfig{
		URI:      uri,
		Database: "expense-tracker-test",
	})
	require.NoError(s.T(), err)
	s.store = store
}

func (s *StoreSuite) SetupTest() {
	require.NoError(s.T(), s.store.collection(UserCollection).Drop(s.ctx))
	require.NoError(s.T(), s.store.collection(ExpenseCollection).Drop(s.ctx))
	require.NoError(s.T(), s.store.ensureIndexes(s.ctx))
}

func (s *StoreSuite) TearDownSuite() {
	if s.store != nil {
		_ = s.store.client.Database(s.store.database).Drop(s.ctx)
		_ = s.store.Close(s.ctx)
	}
}

func (s *StoreSuite) TestCreateUserAssignsID() {
	user := &models.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(s.T(), s.store.CreateUser(s.ctx, user))
	assert.False(s.T(), user.ID.IsZero())

	found, err := s.store.GetUserByUsername(s.ctx, "alice")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), user.ID, found.ID)
	assert.Equal(s.T(), "hash", found.PasswordHash)
}

func (s *StoreSuite) TestDuplicateUsernameIsConflict() {
	require.NoError(s.T(), s.store.CreateUser(s.ctx, &models.User{Username: "alice", PasswordHash: "h1"}))

	err := s.store.CreateUser(s.ctx, &models.User{Username: "alice", PasswordHash: "h2"})
	require.Error(s.T(), err)
	assert.True(s.T(), apperror.IsConflict(err))
}

func (s *StoreSuite) TestGetUnknownUserIsNotFound() {
	_, err := s.store.GetUserByUsername(s.ctx, "nobody")
	require.Error(s.T(), err)
	assert.True(s.T(), apperror.IsNotFound(err))
}

func (s *StoreSuite) TestExpenseCRUDRoundTrip() {
	created, err := s.store.CreateExpense(s.ctx, &models.Expense{
		Title:    "Coffee",
		Amount:   4.5,
		Date:     "2024-01-01",
		Category: "Food",
		UserID:   "U1",
	})
	require.NoError(s.T(), err)
	require.False(s.T(), created.ID.IsZero())

	listed, err := s.store.ListExpenses(s.ctx, "U1")
	require.NoError(s.T(), err)
	require.Len(s.T(), listed, 1)
	assert.Equal(s.T(), created.ID, listed[0].ID)

	updated, err := s.store.UpdateExpense(s.ctx, created.ID.Hex(), "Tea", 3.0, "2024-01-02", "Drinks")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Tea", updated.Title)
	assert.Equal(s.T(), 3.0, updated.Amount)
	assert.Equal(s.T(), "U1", updated.UserID, "owner must survive update")

	deleted, err := s.store.DeleteExpense(s.ctx, created.ID.Hex())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Tea", deleted.Title)

	_, err = s.store.DeleteExpense(s.ctx, created.ID.Hex())
	assert.True(s.T(), apperror.IsNotFound(err))
}

func (s *StoreSuite) TestListEmptyIsEmptySlice() {
	listed, err := s.store.ListExpenses(s.ctx, "nobody")
	require.NoError(s.T(), err)
	assert.NotNil(s.T(), listed)
	assert.Empty(s.T(), listed)
}

func (s *StoreSuite) TestMalformedObjectIDIsNotFound() {
	_, err := s.store.UpdateExpense(s.ctx, "not-an-object-id", "t", 1, "d", "c")
	assert.True(s.T(), apperror.IsNotFound(err))

	_, err = s.store.DeleteExpense(s.ctx, "not-an-object-id")
	assert.True(s.T(), apperror.IsNotFound(err))
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func TestExpenseDocumentRoundTripsBSONTags(t *testing.T) {
	expense := models.Expense{
		ID:       bson.NewObjectID(),
		Title:    "Coffee",
		Amount:   4.5,
		Date:     "2024-01-01",
		Category: "Food",
		UserID:   "U1",
	}

	raw, err := bson.Marshal(expense)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, "U1", doc["user_id"], "owner is stored under user_id")
	assert.Contains(t, doc, "_id")
}
