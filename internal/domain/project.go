package domain

import (
	"context"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectCategory is the closed set of portfolio project categories.
type ProjectCategory string

const (
	ProjectWeb     ProjectCategory = "WEB"
	ProjectMobile  ProjectCategory = "MOBILE"
	ProjectDesktop ProjectCategory = "DESKTOP"
)

func (c ProjectCategory) Valid() bool {
	switch c {
	case ProjectWeb, ProjectMobile, ProjectDesktop:
		return true
	}
	return false
}

// Project is a portfolio entry. Stacks reference Skill documents by id.
type Project struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title          string               `bson:"title" json:"title"`
	Image          string               `bson:"image,omitempty" json:"image,omitempty"`
	Category       ProjectCategory      `bson:"category" json:"category"`
	Description    string               `bson:"description" json:"description"`
	Features       []string             `bson:"features,omitempty" json:"features,omitempty"`
	DemoLink       string               `bson:"demoLink,omitempty" json:"demoLink,omitempty"`
	GithubFrontend string               `bson:"githubFrontend,omitempty" json:"githubFrontend,omitempty"`
	GithubBackend  string               `bson:"githubBackend,omitempty" json:"githubBackend,omitempty"`
	Stacks         []primitive.ObjectID `bson:"stacks,omitempty" json:"stacks,omitempty"`
	CreatedAt      time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt" json:"updatedAt"`
}

type ProjectCreate struct {
	Title          string   `json:"title" validate:"required,min=2,max=200"`
	Image          string   `json:"image" validate:"omitempty,max=500"`
	Category       string   `json:"category" validate:"required"`
	Description    string   `json:"description" validate:"required,min=10,max=5000"`
	Features       []string `json:"features" validate:"omitempty,dive,max=300"`
	DemoLink       string   `json:"demoLink" validate:"omitempty,url"`
	GithubFrontend string   `json:"githubFrontend" validate:"omitempty,url"`
	GithubBackend  string   `json:"githubBackend" validate:"omitempty,url"`
	Stacks         []string `json:"stacks" validate:"omitempty,dive,len=24,hexadecimal"`
}

type ProjectUpdate struct {
	Title          *string   `json:"title" validate:"omitempty,min=2,max=200"`
	Image          *string   `json:"image" validate:"omitempty,max=500"`
	Category       *string   `json:"category"`
	Description    *string   `json:"description" validate:"omitempty,min=10,max=5000"`
	Features       *[]string `json:"features" validate:"omitempty,dive,max=300"`
	DemoLink       *string   `json:"demoLink" validate:"omitempty,url"`
	GithubFrontend *string   `json:"githubFrontend" validate:"omitempty,url"`
	GithubBackend  *string   `json:"githubBackend" validate:"omitempty,url"`
	Stacks         *[]string `json:"stacks" validate:"omitempty,dive,len=24,hexadecimal"`
}

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, params url.Values) ([]Project, *ListMeta, error)
	Update(ctx context.Context, id string, upd ProjectUpdate) (*Project, error)
	Delete(ctx context.Context, id string) error
}
