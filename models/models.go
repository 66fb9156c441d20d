package models

import (
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a registered account. The bcrypt hash never serializes to JSON.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string        `bson:"username" json:"username"`
	PasswordHash string        `bson:"password" json:"-"`
}

// Expense is a single expense record owned by one user. Date is stored as the
// caller supplied it; no format is enforced.
type Expense struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string        `bson:"title" json:"title"`
	Amount   float64       `bson:"amount" json:"amount"`
	Date     string        `bson:"date" json:"date"`
	Category string        `bson:"category" json:"category"`
	UserID   string        `bson:"user_id" json:"userId"`
}

// Claims is the JWT payload issued on login.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId"`
	Username string `json:"username"`
}
