package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims are JWT claims for user sessions. Subject holds the user ID.
type UserClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserID returns the subject of the token
func (c *UserClaims) UserID() string {
	return c.Subject
}

// CredentialsRequest is the request body for register and login
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse is returned after a user is created
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// User is a registered account
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
