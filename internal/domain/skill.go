package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SkillLevel is the closed set of proficiency labels.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelExperienced  SkillLevel = "Experienced"
	LevelExpert       SkillLevel = "Expert"
)

func (l SkillLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelExperienced, LevelExpert:
		return true
	}
	return false
}

// SkillCategory groups skills ("Frontend", "Backend", "DevOps", ...).
type SkillCategory struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title string             `bson:"title" json:"title"`
}

type SkillCategoryCreate struct {
	Title string `json:"title" validate:"required,min=2,max=100"`
}

// Skill is a single technology entry shown on the portfolio.
type Skill struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Skill    string             `bson:"skill" json:"skill"`
	Level    SkillLevel         `bson:"level" json:"level"`
	Logo     string             `bson:"logo" json:"logo"`
	Category primitive.ObjectID `bson:"category,omitempty" json:"category,omitempty"`
}

type SkillCreate struct {
	Skill    string `json:"skill" validate:"required,min=1,max=100"`
	Level    string `json:"level" validate:"required"`
	Logo     string `json:"logo" validate:"required,max=500"`
	Category string `json:"category" validate:"omitempty,len=24,hexadecimal"`
}

type SkillUpdate struct {
	Skill    *string `json:"skill" validate:"omitempty,min=1,max=100"`
	Level    *string `json:"level"`
	Logo     *string `json:"logo" validate:"omitempty,max=500"`
	Category *string `json:"category" validate:"omitempty,len=24,hexadecimal"`
}

type SkillCategoryRepository interface {
	Create(ctx context.Context, category *SkillCategory) error
	GetAll(ctx context.Context) ([]SkillCategory, error)
	GetByID(ctx context.Context, id string) (*SkillCategory, error)
	Update(ctx context.Context, id string, title string) (*SkillCategory, error)
	Delete(ctx context.Context, id string) error
}

type SkillRepository interface {
	Create(ctx context.Context, skill *Skill) error
	GetAll(ctx context.Context) ([]Skill, error)
	GetByID(ctx context.Context, id string) (*Skill, error)
	Update(ctx context.Context, id string, upd SkillUpdate) (*Skill, error)
	Delete(ctx context.Context, id string) error
	// CountByIDs reports how many of the given skill ids exist, used to
	// validate project stack references.
	CountByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}
