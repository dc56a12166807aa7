package service

import (
	"context"
	"testing"

	"github.com/rensmac/portfolio-api/internal/apperror"
	"github.com/rensmac/portfolio-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProjectService_Create_InvalidCategory(t *testing.T) {
	svc := NewProjectService(new(MockProjectRepository), new(MockSkillRepository))

	_, err := svc.Create(context.Background(), domain.ProjectCreate{
		Title:       "Portfolio Site",
		Category:    "EMBEDDED",
		Description: "A site that shows off other projects.",
	})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.StatusCode)
}

func TestProjectService_Create_UnknownStackRejected(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	skillRepo := new(MockSkillRepository)
	svc := NewProjectService(projectRepo, skillRepo)

	stackID := primitive.NewObjectID()
	// Only one of the two referenced skills exists.
	skillRepo.On("CountByIDs", mock.Anything, mock.AnythingOfType("[]primitive.ObjectID")).Return(int64(1), nil)

	_, err := svc.Create(context.Background(), domain.ProjectCreate{
		Title:       "Portfolio Site",
		Category:    string(domain.ProjectWeb),
		Description: "A site that shows off other projects.",
		Stacks:      []string{stackID.Hex(), primitive.NewObjectID().Hex()},
	})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.StatusCode)
	projectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectService_Create(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	skillRepo := new(MockSkillRepository)
	svc := NewProjectService(projectRepo, skillRepo)

	stacks := []string{primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex()}
	skillRepo.On("CountByIDs", mock.Anything, mock.AnythingOfType("[]primitive.ObjectID")).Return(int64(2), nil)
	projectRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Project")).Return(nil)

	project, err := svc.Create(context.Background(), domain.ProjectCreate{
		Title:       "Portfolio Site",
		Category:    string(domain.ProjectWeb),
		Description: "A site that shows off other projects.",
		Stacks:      stacks,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ProjectWeb, project.Category)
	assert.Len(t, project.Stacks, 2)
	projectRepo.AssertExpectations(t)
}
