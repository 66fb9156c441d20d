package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"github.com/bodeppav/New-Expense-Tracker-Backend/config"
	"github.com/bodeppav/New-Expense-Tracker-Backend/logger"
)

const (
	UserCollection    = "users"
	ExpenseCollection = "expenses"
)

// Store wraps the Mongo client and the database name. All data access goes
// through its methods; nothing else holds the client.
type Store struct {
	client   *mongo.Client
	database string
}

// Connect establishes the Mongo connection, verifies it with a ping and
// ensures the unique username index exists.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		logger.Get().Error("failed to connect to MongoDB", zap.Error(err))
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	store := &Store{client: client, database: cfg.Database}
	if err := store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("error pinging MongoDB: %w", err)
	}
	if err := store.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	logger.Get().Info("successfully connected to MongoDB",
		zap.String("database", cfg.Database))
	return store, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	// Mirrors the schema-level uniqueness of username: duplicate inserts fail
	// at the store even if the pre-check races.
	_, err := s.collection(UserCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating username index: %w", err)
	}
	return nil
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.client.Database(s.database).Collection(name)
}

// Ping verifies the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		logger.Get().Error("failed to disconnect from MongoDB", zap.Error(err))
		return err
	}
	logger.Get().Info("successfully disconnected from MongoDB")
	return nil
}
