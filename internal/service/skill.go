package service

import (
	"context"
	"fmt"

	"github.com/rensmac/portfolio-api/internal/apperror"
	"github.com/rensmac/portfolio-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SkillService handles skills and their categories
type SkillService struct {
	skillRepo    domain.SkillRepository
	categoryRepo domain.SkillCategoryRepository
}

// NewSkillService creates a new skill service
func NewSkillService(skillRepo domain.SkillRepository, categoryRepo domain.SkillCategoryRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo, categoryRepo: categoryRepo}
}

// Create creates a skill after validating its level and category reference
func (s *SkillService) Create(ctx context.Context, input domain.SkillCreate) (*domain.Skill, error) {
	level := domain.SkillLevel(input.Level)
	if !level.Valid() {
		return nil, apperror.BadRequest(fmt.Sprintf("invalid skill level: %s", input.Level))
	}

	skill := &domain.Skill{
		Skill: input.Skill,
		Level: level,
		Logo:  input.Logo,
	}

	if input.Category != "" {
		oid, err := s.resolveCategory(ctx, input.Category)
		if err != nil {
			return nil, err
		}
		skill.Category = oid
	}

	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

// GetAll returns every skill
func (s *SkillService) GetAll(ctx context.Context) ([]domain.Skill, error) {
	return s.skillRepo.GetAll(ctx)
}

// GetByID returns a single skill
func (s *SkillService) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	skill, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, apperror.NotFound("skill not found")
	}
	return skill, nil
}

// Update applies a partial update, re-validating level and category when
// they change.
func (s *SkillService) Update(ctx context.Context, id string, input domain.SkillUpdate) (*domain.Skill, error) {
	if input.Level != nil && !domain.SkillLevel(*input.Level).Valid() {
		return nil, apperror.BadRequest(fmt.Sprintf("invalid skill level: %s", *input.Level))
	}
	if input.Category != nil && *input.Category != "" {
		if _, err := s.resolveCategory(ctx, *input.Category); err != nil {
			return nil, err
		}
	}

	return s.skillRepo.Update(ctx, id, input)
}

// Delete removes a skill
func (s *SkillService) Delete(ctx context.Context, id string) error {
	return s.skillRepo.Delete(ctx, id)
}

// CreateCategory creates a skill category
func (s *SkillService) CreateCategory(ctx context.Context, input domain.SkillCategoryCreate) (*domain.SkillCategory, error) {
	category := &domain.SkillCategory{Title: input.Title}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// GetAllCategories returns every skill category
func (s *SkillService) GetAllCategories(ctx context.Context) ([]domain.SkillCategory, error) {
	return s.categoryRepo.GetAll(ctx)
}

// UpdateCategory renames a skill category
func (s *SkillService) UpdateCategory(ctx context.Context, id string, input domain.SkillCategoryCreate) (*domain.SkillCategory, error) {
	return s.categoryRepo.Update(ctx, id, input.Title)
}

// DeleteCategory removes a skill category
func (s *SkillService) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *SkillService) resolveCategory(ctx context.Context, hexID string) (primitive.ObjectID, error) {
	category, err := s.categoryRepo.GetByID(ctx, hexID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if category == nil {
		return primitive.NilObjectID, apperror.BadRequest("skill category does not exist")
	}
	return category.ID, nil
}
