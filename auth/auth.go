// Package auth implements credential handling and token issuance. Passwords
// are stored only as bcrypt hashes; tokens are stateless HS256 JWTs, so there
// is no revocation or logout.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bodeppav/New-Expense-Tracker-Backend/apperror"
	"github.com/bodeppav/New-Expense-Tracker-Backend/config"
	"github.com/bodeppav/New-Expense-Tracker-Backend/logger"
	"github.com/bodeppav/New-Expense-Tracker-Backend/models"
)

// invalidCredentials is returned for unknown usernames and wrong passwords
// alike so responses cannot be used to enumerate accounts.
const invalidCredentials = "Invalid credentials"

// UserStore is the persistence the service needs for accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type Service struct {
	users  UserStore
	secret []byte
	ttl    time.Duration
}

func NewService(users UserStore, cfg config.AuthConfig) *Service {
	return &Service{
		users:  users,
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, username, password string) error {
	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return apperror.NewConflict("User already exists")
	} else if !apperror.IsNotFound(err) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternal("Error registering user", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return err
	}

	logger.Get().Info("registered new user", zap.String("username", username))
	return nil
}

// Login verifies the credentials and issues a signed token carrying the
// user's id and username.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return "", apperror.NewAuth(invalidCredentials, nil)
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", apperror.NewAuth(invalidCredentials, nil)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", apperror.NewInternal("Error generating token", err)
	}

	logger.Get().Info("user logged in", zap.String("username", username))
	return token, nil
}

func (s *Service) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID:   user.ID.Hex(),
		Username: user.Username,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken verifies a token's signature and expiry and returns its claims.
func (s *Service) ParseToken(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperror.NewAuth("Invalid token", err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, apperror.NewAuth("Invalid token", nil)
	}
	return claims, nil
}
