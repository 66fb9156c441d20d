package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/bodeppav/New-Expense-Tracker-Backend/apperror"
	"github.com/bodeppav/New-Expense-Tracker-Backend/config"
	"github.com/bodeppav/New-Expense-Tracker-Backend/models"
)

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	if _, exists := f.users[user.Username]; exists {
		return apperror.NewConflict("User already exists")
	}
	user.ID = bson.NewObjectID()
	stored := *user
	f.users[user.Username] = &stored
	return nil
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	user, exists := f.users[username]
	if !exists {
		return nil, apperror.NewNotFound("User not found")
	}
	found := *user
	return &found, nil
}

func newTestService(store UserStore) *Service {
	return NewService(store, config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	})
}

func TestRegisterHashesPassword(t *testing.T) {
	store := newFakeUserStore()
	service := newTestService(store)

	err := service.Register(context.Background(), "alice", "hunter2")
	require.NoError(t, err)

	stored := store.users["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter2", stored.PasswordHash, "password must not be stored in plaintext")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := newFakeUserStore()
	service := newTestService(store)

	require.NoError(t, service.Register(context.Background(), "alice", "hunter2"))

	err := service.Register(context.Background(), "alice", "other")
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestLoginIssuesTokenWithIdentityClaims(t *testing.T) {
	store := newFakeUserStore()
	service := newTestService(store)
	require.NoError(t, service.Register(context.Background(), "alice", "hunter2"))

	token, err := service.Login(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, store.users["alice"].ID.Hex(), claims.UserID)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time),
		"token must expire exactly one hour after issuance")
}

func TestLoginFailuresAreUniform(t *testing.T) {
	store := newFakeUserStore()
	service := newTestService(store)
	require.NoError(t, service.Register(context.Background(), "alice", "hunter2"))

	_, wrongPassword := service.Login(context.Background(), "alice", "nope")
	_, unknownUser := service.Login(context.Background(), "bob", "hunter2")

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, apperror.FromError(wrongPassword).Message, apperror.FromError(unknownUser).Message,
		"wrong password and unknown user must be indistinguishable")
}

func TestParseTokenRejectsTamperedSignature(t *testing.T) {
	store := newFakeUserStore()
	service := newTestService(store)
	require.NoError(t, service.Register(context.Background(), "alice", "hunter2"))

	token, err := service.Login(context.Background(), "alice", "hunter2")
	require.NoError(t, err)

	other := NewService(store, config.AuthConfig{JWTSecret: "different-secret", TokenTTL: time.Hour})
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpiredToken(t *testing.T) {
	store := newFakeUserStore()
	service := NewService(store, config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  -time.Minute,
	})
	require.NoError(t, service.Register(context.Background(), "alice", "hunter2"))

	token, err := service.Login(context.Background(), "alice", "hunter2")
	require.NoError(t, err)

	_, err = service.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	service := newTestService(newFakeUserStore())
	_, err := service.ParseToken("not-a-token")
	assert.Error(t, err)
}
