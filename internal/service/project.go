package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rensmac/portfolio-api/internal/apperror"
	"github.com/rensmac/portfolio-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectService handles portfolio project operations
type ProjectService struct {
	projectRepo domain.ProjectRepository
	skillRepo   domain.SkillRepository
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo domain.ProjectRepository, skillRepo domain.SkillRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, skillRepo: skillRepo}
}

// Create creates a project after validating its category and stack references
func (s *ProjectService) Create(ctx context.Context, input domain.ProjectCreate) (*domain.Project, error) {
	category := domain.ProjectCategory(input.Category)
	if !category.Valid() {
		return nil, apperror.BadRequest(fmt.Sprintf("invalid project category: %s", input.Category))
	}

	stacks, err := s.resolveStacks(ctx, input.Stacks)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	project := &domain.Project{
		Title:          input.Title,
		Image:          input.Image,
		Category:       category,
		Description:    input.Description,
		Features:       input.Features,
		DemoLink:       input.DemoLink,
		GithubFrontend: input.GithubFrontend,
		GithubBackend:  input.GithubBackend,
		Stacks:         stacks,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// GetByID returns a single project
func (s *ProjectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NotFound("project not found")
	}
	return project, nil
}

// List returns projects matching the request's query parameters
func (s *ProjectService) List(ctx context.Context, params url.Values) ([]domain.Project, *domain.ListMeta, error) {
	return s.projectRepo.List(ctx, params)
}

// Update applies a partial update, re-validating category and stacks when
// they change.
func (s *ProjectService) Update(ctx context.Context, id string, input domain.ProjectUpdate) (*domain.Project, error) {
	if input.Category != nil && !domain.ProjectCategory(*input.Category).Valid() {
		return nil, apperror.BadRequest(fmt.Sprintf("invalid project category: %s", *input.Category))
	}
	if input.Stacks != nil {
		if _, err := s.resolveStacks(ctx, *input.Stacks); err != nil {
			return nil, err
		}
	}

	project, err := s.projectRepo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}

// resolveStacks converts stack ids and verifies every one references an
// existing skill.
func (s *ProjectService) resolveStacks(ctx context.Context, hexIDs []string) ([]primitive.ObjectID, error) {
	if len(hexIDs) == 0 {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hex := range hexIDs {
		oid, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, apperror.BadRequest(fmt.Sprintf("invalid stack id: %s", hex))
		}
		ids = append(ids, oid)
	}

	count, err := s.skillRepo.CountByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to verify stacks: %w", err)
	}
	if count != int64(len(ids)) {
		return nil, apperror.BadRequest("one or more stack ids do not reference an existing skill")
	}
	return ids, nil
}
