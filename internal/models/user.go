package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User represents a registered account. The password hash is never
// serialized into API responses.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UserInfo is the public projection of a user returned by the user listing.
type UserInfo struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
}

// Claims are the JWT claims carried by a session token.
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenDetails is what a successful login hands back to the client.
type TokenDetails struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Token    string `json:"token"`
	Expires  int64  `json:"-"`
}
