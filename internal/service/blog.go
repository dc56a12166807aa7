package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/rensmac/portfolio-api/internal/apperror"
	"github.com/rensmac/portfolio-api/internal/domain"
	repo "github.com/rensmac/portfolio-api/internal/repository/mongo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// maxSlugAttempts bounds the "-2", "-3", ... suffix search for a free slug.
const maxSlugAttempts = 100

// BlogService handles blog posts and their embedded comments
type BlogService struct {
	blogRepo domain.BlogRepository
}

// NewBlogService creates a new blog service
func NewBlogService(blogRepo domain.BlogRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

// Create creates a blog post. The slug is derived from the title and
// uniquified with a numeric suffix when taken. Posts default to published
// and are stamped with a publication time.
func (s *BlogService) Create(ctx context.Context, authorID string, input domain.BlogCreate) (*domain.Blog, error) {
	category := domain.BlogCategory(input.Category)
	if !category.Valid() {
		return nil, apperror.BadRequest(fmt.Sprintf("invalid blog category: %s", input.Category))
	}

	status := domain.BlogPublished
	if input.Status != "" {
		status = domain.BlogStatus(input.Status)
		if !status.Valid() {
			return nil, apperror.BadRequest(fmt.Sprintf("invalid blog status: %s", input.Status))
		}
	}

	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, apperror.BadRequest("invalid author id")
	}

	slug, err := s.uniqueSlug(ctx, input.Title, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}

	blog := &domain.Blog{
		Title:         input.Title,
		Slug:          slug,
		Excerpt:       input.Excerpt,
		Content:       input.Content,
		FeaturedImage: input.FeaturedImage,
		Author:        author,
		Category:      category,
		Tags:          input.Tags,
		Status:        status,
		IsFeature:     input.IsFeature,
	}
	if status == domain.BlogPublished {
		now := time.Now()
		blog.PublishedAt = &now
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}
	return blog, nil
}

// GetByID returns a post in any status, comments included, for the owner
func (s *BlogService) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, apperror.NotFound("blog not found")
	}
	return blog, nil
}

// GetPublished returns a published post by id or slug, bumps its view
// counter and hides unapproved comments.
func (s *BlogService) GetPublished(ctx context.Context, identifier string) (*domain.Blog, error) {
	blog, err := s.blogRepo.GetPublished(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, apperror.NotFound("blog not found")
	}

	if err := s.blogRepo.IncrementViews(ctx, blog.ID); err != nil {
		return nil, err
	}
	blog.ViewCount++

	blog.Comments = blog.ApprovedComments()
	return blog, nil
}

// ListAdmin lists posts in every status. Comment bodies are stripped from
// list responses.
func (s *BlogService) ListAdmin(ctx context.Context, params url.Values) ([]domain.Blog, *domain.ListMeta, error) {
	blogs, meta, err := s.blogRepo.ListAdmin(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	stripComments(blogs)
	return blogs, meta, nil
}

// ListPublished lists published posts only
func (s *BlogService) ListPublished(ctx context.Context, params url.Values) ([]domain.Blog, *domain.ListMeta, error) {
	blogs, meta, err := s.blogRepo.ListPublished(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	stripComments(blogs)
	return blogs, meta, nil
}

// Update applies a partial update. A title change regenerates the slug; a
// first transition to published stamps the publication time.
func (s *BlogService) Update(ctx context.Context, id string, input domain.BlogUpdate) (*domain.Blog, error) {
	if input.Category != nil && !domain.BlogCategory(*input.Category).Valid() {
		return nil, apperror.BadRequest(fmt.Sprintf("invalid blog category: %s", *input.Category))
	}
	if input.Status != nil && !domain.BlogStatus(*input.Status).Valid() {
		return nil, apperror.BadRequest(fmt.Sprintf("invalid blog status: %s", *input.Status))
	}

	existing, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("blog not found")
	}

	if input.Title != nil && *input.Title != existing.Title {
		slug, err := s.uniqueSlug(ctx, *input.Title, existing.ID)
		if err != nil {
			return nil, err
		}
		input.Slug = &slug
	}

	if input.Status != nil &&
		domain.BlogStatus(*input.Status) == domain.BlogPublished &&
		existing.Status != domain.BlogPublished &&
		existing.PublishedAt == nil {
		now := time.Now()
		input.PublishedAt = &now
	}

	blog, err := s.blogRepo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	return blog, nil
}

// Delete removes a post and its comments
func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.blogRepo.Delete(ctx, id)
}

// AddComment records a visitor comment on a published post. Comments start
// unapproved and stay invisible until moderated.
func (s *BlogService) AddComment(ctx context.Context, blogID string, input domain.CommentCreate, ipAddress, userAgent string) (*domain.Comment, error) {
	now := time.Now()
	comment := &domain.Comment{
		ID:         primitive.NewObjectID(),
		Author:     input.Author,
		Email:      input.Email,
		Website:    input.Website,
		Content:    input.Content,
		IsApproved: false,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.blogRepo.AddComment(ctx, blogID, comment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("blog not found")
		}
		return nil, err
	}
	return comment, nil
}

// GetComments returns the approved comments of a published post, newest
// first, paginated in memory since comments live inside the blog document.
func (s *BlogService) GetComments(ctx context.Context, blogID string, params url.Values) ([]domain.Comment, *domain.ListMeta, error) {
	blog, err := s.blogRepo.GetPublished(ctx, blogID)
	if err != nil {
		return nil, nil, err
	}
	if blog == nil {
		return nil, nil, apperror.NotFound("blog not found")
	}

	approved := blog.ApprovedComments()
	sort.Slice(approved, func(i, j int) bool {
		return approved[i].CreatedAt.After(approved[j].CreatedAt)
	})

	page, limit := repo.ParsePagination(params)
	meta := repo.NewListMeta(page, limit, int64(len(approved)))

	start := int((page - 1) * limit)
	if start >= len(approved) {
		return []domain.Comment{}, meta, nil
	}
	end := start + int(limit)
	if end > len(approved) {
		end = len(approved)
	}
	return approved[start:end], meta, nil
}

// ModerateComment approves or rejects a comment by id
func (s *BlogService) ModerateComment(ctx context.Context, commentID string, input domain.CommentModerate) (*domain.Comment, error) {
	approved := input.Action == "approve"

	comment, err := s.blogRepo.SetCommentApproval(ctx, commentID, approved)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("comment not found")
		}
		return nil, err
	}
	return comment, nil
}

// uniqueSlug slugifies the title and appends "-2", "-3", ... until no other
// post holds the slug.
func (s *BlogService) uniqueSlug(ctx context.Context, title string, excludeID primitive.ObjectID) (string, error) {
	base := domain.Slugify(title)
	if base == "" {
		return "", apperror.BadRequest("title does not produce a valid slug")
	}

	slug := base
	for i := 2; i <= maxSlugAttempts; i++ {
		taken, err := s.blogRepo.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
	return "", apperror.Conflict("could not generate a unique slug")
}

func stripComments(blogs []domain.Blog) {
	for i := range blogs {
		blogs[i].Comments = nil
	}
}
