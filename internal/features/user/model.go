package user

import (
	"time"

	"go-clinic/internal/access"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a staff account stored in the "usuarios" collection. Role ids are
// stored as-is (possibly legacy-cased); normalization happens in the access
// package at evaluation time.
type User struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Email        string              `json:"email" bson:"email"`
	Nome         string              `json:"nome" bson:"nome"`
	Role         string              `json:"role" bson:"role"`
	Permissions  []access.Permission `json:"permissions" bson:"permissions"`
	Disabled     bool                `json:"disabled" bson:"disabled"`
	PasswordHash string              `json:"-" bson:"password_hash"`
	CreatedAt    time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at" bson:"updated_at"`
}

// CreateUserRequest is the admin-facing payload for creating an account.
type CreateUserRequest struct {
	Email       string              `json:"email"`
	Nome        string              `json:"nome"`
	Password    string              `json:"password"`
	Role        string              `json:"role"`
	Permissions []access.Permission `json:"permissions"`
}

// UpdateUserRequest carries the editable fields of an account.
type UpdateUserRequest struct {
	Nome        *string              `json:"nome"`
	Role        *string              `json:"role"`
	Permissions *[]access.Permission `json:"permissions"`
	Disabled    *bool                `json:"disabled"`
	Password    *string              `json:"password"`
}
