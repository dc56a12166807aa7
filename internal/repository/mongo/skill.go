package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rensmac/portfolio-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	_ domain.SkillRepository         = (*SkillRepository)(nil)
	_ domain.SkillCategoryRepository = (*SkillCategoryRepository)(nil)
)

// SkillRepository handles skill data access
type SkillRepository struct {
	coll *mongo.Collection
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *DB) *SkillRepository {
	return &SkillRepository{coll: db.Collection(skillsColl)}
}

func (r *SkillRepository) Create(ctx context.Context, skill *domain.Skill) error {
	result, err := r.coll.InsertOne(ctx, skill)
	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}
	skill.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *SkillRepository) GetAll(ctx context.Context) ([]domain.Skill, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	skills := []domain.Skill{}
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, fmt.Errorf("failed to decode skills: %w", err)
	}
	return skills, nil
}

func (r *SkillRepository) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var skill domain.Skill
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&skill)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return &skill, nil
}

func (r *SkillRepository) Update(ctx context.Context, id string, upd domain.SkillUpdate) (*domain.Skill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if upd.Skill != nil {
		set["skill"] = *upd.Skill
	}
	if upd.Level != nil {
		set["level"] = *upd.Level
	}
	if upd.Logo != nil {
		set["logo"] = *upd.Logo
	}
	if upd.Category != nil {
		catID, err := primitive.ObjectIDFromHex(*upd.Category)
		if err != nil {
			return nil, err
		}
		set["category"] = catID
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var skill domain.Skill
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&skill)
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *SkillRepository) CountByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("failed to count skills: %w", err)
	}
	return count, nil
}

// SkillCategoryRepository handles skill category data access
type SkillCategoryRepository struct {
	coll *mongo.Collection
}

// NewSkillCategoryRepository creates a new skill category repository
func NewSkillCategoryRepository(db *DB) *SkillCategoryRepository {
	return &SkillCategoryRepository{coll: db.Collection(skillCategoriesColl)}
}

func (r *SkillCategoryRepository) Create(ctx context.Context, category *domain.SkillCategory) error {
	result, err := r.coll.InsertOne(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to create skill category: %w", err)
	}
	category.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *SkillCategoryRepository) GetAll(ctx context.Context) ([]domain.SkillCategory, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list skill categories: %w", err)
	}

	categories := []domain.SkillCategory{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode skill categories: %w", err)
	}
	return categories, nil
}

func (r *SkillCategoryRepository) GetByID(ctx context.Context, id string) (*domain.SkillCategory, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var category domain.SkillCategory
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill category: %w", err)
	}
	return &category, nil
}

func (r *SkillCategoryRepository) Update(ctx context.Context, id string, title string) (*domain.SkillCategory, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var category domain.SkillCategory
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"title": title}}, opts).Decode(&category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *SkillCategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete skill category: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
