package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// About is the singleton profile record. At most one document exists.
type About struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	About      string             `bson:"about" json:"about"`
	Bio        string             `bson:"bio" json:"bio"`
	Photo      string             `bson:"photo" json:"photo"`
	Experience int                `bson:"experience" json:"experience"`
	Projects   int                `bson:"projects" json:"projects"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type AboutCreate struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	About      string `json:"about" validate:"required,min=10,max=2000"`
	Bio        string `json:"bio" validate:"required,min=10,max=5000"`
	Photo      string `json:"photo" validate:"omitempty,max=500"`
	Experience int    `json:"experience" validate:"min=0"`
	Projects   int    `json:"projects" validate:"min=0"`
}

// AboutUpdate carries partial updates; nil fields are left untouched.
type AboutUpdate struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=100"`
	About      *string `json:"about" validate:"omitempty,min=10,max=2000"`
	Bio        *string `json:"bio" validate:"omitempty,min=10,max=5000"`
	Photo      *string `json:"photo" validate:"omitempty,max=500"`
	Experience *int    `json:"experience" validate:"omitempty,min=0"`
	Projects   *int    `json:"projects" validate:"omitempty,min=0"`
}

type AboutRepository interface {
	Create(ctx context.Context, about *About) error
	// Get returns the singleton record, or nil when none exists yet.
	Get(ctx context.Context) (*About, error)
	Update(ctx context.Context, id string, upd AboutUpdate) (*About, error)
	Delete(ctx context.Context, id string) error
}
