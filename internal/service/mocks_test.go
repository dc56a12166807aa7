package service

import (
	"context"
	"net/url"

	"github.com/rensmac/portfolio-api/internal/domain"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

// MockAboutRepository mocks the AboutRepository interface
type MockAboutRepository struct {
	mock.Mock
}

func (m *MockAboutRepository) Create(ctx context.Context, about *domain.About) error {
	args := m.Called(ctx, about)
	return args.Error(0)
}

func (m *MockAboutRepository) Get(ctx context.Context) (*domain.About, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.About), args.Error(1)
}

func (m *MockAboutRepository) Update(ctx context.Context, id string, upd domain.AboutUpdate) (*domain.About, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.About), args.Error(1)
}

func (m *MockAboutRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBlogRepository mocks the BlogRepository interface
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *MockBlogRepository) GetPublished(ctx context.Context, identifier string) (*domain.Blog, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *MockBlogRepository) ListAdmin(ctx context.Context, params url.Values) ([]domain.Blog, *domain.ListMeta, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Blog), args.Get(1).(*domain.ListMeta), args.Error(2)
}

func (m *MockBlogRepository) ListPublished(ctx context.Context, params url.Values) ([]domain.Blog, *domain.ListMeta, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Blog), args.Get(1).(*domain.ListMeta), args.Error(2)
}

func (m *MockBlogRepository) Update(ctx context.Context, id string, upd domain.BlogUpdate) (*domain.Blog, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *MockBlogRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogRepository) SlugExists(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlogRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogRepository) AddComment(ctx context.Context, blogID string, comment *domain.Comment) error {
	args := m.Called(ctx, blogID, comment)
	return args.Error(0)
}

func (m *MockBlogRepository) SetCommentApproval(ctx context.Context, commentID string, approved bool) (*domain.Comment, error) {
	args := m.Called(ctx, commentID, approved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

// MockProjectRepository mocks the ProjectRepository interface
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context, params url.Values) ([]domain.Project, *domain.ListMeta, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Project), args.Get(1).(*domain.ListMeta), args.Error(2)
}

func (m *MockProjectRepository) Update(ctx context.Context, id string, upd domain.ProjectUpdate) (*domain.Project, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSkillRepository mocks the SkillRepository interface
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) Create(ctx context.Context, skill *domain.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockSkillRepository) GetAll(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepository) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillRepository) Update(ctx context.Context, id string, upd domain.SkillUpdate) (*domain.Skill, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSkillRepository) CountByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}
