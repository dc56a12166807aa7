package service

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/rensmac/portfolio-api/internal/apperror"
	"github.com/rensmac/portfolio-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func validBlogCreate() domain.BlogCreate {
	return domain.BlogCreate{
		Title:    "Building a Portfolio Backend",
		Excerpt:  "Notes from wiring up a small portfolio API.",
		Content:  "A long enough body describing the build in detail, repeated until it clears the minimum length validation comfortably.",
		Category: string(domain.CategoryWebDevelopment),
	}
}

func TestBlogService_Create_SlugAndPublishedAt(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	svc := NewBlogService(blogRepo)

	blogRepo.On("SlugExists", mock.Anything, "building-a-portfolio-backend", primitive.NilObjectID).Return(false, nil)
	blogRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Blog")).Return(nil)

	blog, err := svc.Create(context.Background(), primitive.NewObjectID().Hex(), validBlogCreate())

	require.NoError(t, err)
	assert.Equal(t, "building-a-portfolio-backend", blog.Slug)
	assert.Equal(t, domain.BlogPublished, blog.Status)
	require.NotNil(t, blog.PublishedAt)
}

func TestBlogService_Create_Draft_NoPublishedAt(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	svc := NewBlogService(blogRepo)

	blogRepo.On("SlugExists", mock.Anything, mock.AnythingOfType("string"), primitive.NilObjectID).Return(false, nil)
	blogRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Blog")).Return(nil)

	input := validBlogCreate()
	input.Status = string(domain.BlogDraft)

	blog, err := svc.Create(context.Background(), primitive.NewObjectID().Hex(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.BlogDraft, blog.Status)
	assert.Nil(t, blog.PublishedAt)
}

func TestBlogService_Create_SlugCollisionSuffixed(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	svc := NewBlogService(blogRepo)

	blogRepo.On("SlugExists", mock.Anything, "building-a-portfolio-backend", primitive.NilObjectID).Return(true, nil)
	blogRepo.On("SlugExists", mock.Anything, "building-a-portfolio-backend-2", primitive.NilObjectID).Return(true, nil)
	blogRepo.On("SlugExists", mock.Anything, "building-a-portfolio-backend-3", primitive.NilObjectID).Return(false, nil)
	blogRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Blog")).Return(nil)

	blog, err := svc.Create(context.Background(), primitive.NewObjectID().Hex(), validBlogCreate())

	require.NoError(t, err)
	assert.Equal(t, "building-a-portfolio-backend-3", blog.Slug)
}

func TestBlogService_Create_InvalidCategory(t *testing.T) {
	svc := NewBlogService(new(MockBlogRepository))

	input := validBlogCreate()
	input.Category = "Gardening"

	_, err := svc.Create(context.Background(), primitive.NewObjectID().Hex(), input)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.StatusCode)
}

func TestBlogService_Update_TitleChangeRegeneratesSlug(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	svc := NewBlogService(blogRepo)

	existing := &domain.Blog{
		ID:     primitive.NewObjectID(),
		Title:  "Old Title",
		Slug:   "old-title",
		Status: domain.BlogPublished,
	}
	newTitle := "Completely New Title"

	blogRepo.On("GetByID", mock.Anything, existing.ID.Hex()).Return(existing, nil)
	blogRepo.On("SlugExists", mock.Anything, "completely-new-title", existing.ID).Return(false, nil)
	blogRepo.On("Update", mock.Anything, existing.ID.Hex(), mock.MatchedBy(func(upd domain.BlogUpdate) bool {
		return upd.Slug != nil && *upd.Slug == "completely-new-title"
	})).Return(existing, nil)

	_, err := svc.Update(context.Background(), existing.ID.Hex(), domain.BlogUpdate{Title: &newTitle})
	require.NoError(t, err)
	blogRepo.AssertExpectations(t)
}

func TestBlogService_Update_PublishTransitionStampsTime(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	svc := NewBlogService(blogRepo)

	existing := &domain.Blog{
		ID:     primitive.NewObjectID(),
		Title:  "Draft Post",
		Slug:   "draft-post",
		Status: domain.BlogDraft,
	}
	published := string(domain.BlogPublished)

	blogRepo.On("GetByID", mock.Anything, existing.ID.Hex()).Return(existing, nil)
	blogRepo.On("Update", mock.Anything, existing.ID.Hex(), mock.MatchedBy(func(upd domain.BlogUpdate) bool {
		return upd.PublishedAt != nil
	})).Return(existing, nil)

	_, err := svc.Update(context.Background(), existing.ID.Hex(), domain.BlogUpdate{Status: &published})
	require.NoError(t, err)
	blogRepo.AssertExpectations(t)
}

func TestBlogService_Update_RepublishKeepsOriginalTime(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	svc := NewBlogService(blogRepo)

	firstPublished := time.Now().Add(-24 * time.Hour)
	existing := &domain.Blog{
		ID:          primitive.NewObjectID(),
		Title:       "Archived Post",
		Slug:        "archived-post",
		Status:      domain.BlogArchived,
		PublishedAt: &firstPublished,
	}
	published := string(domain.BlogPublished)

	blogRepo.On("GetByID", mock.Anything, existing.ID.Hex()).Return(existing, nil)
	blogRepo.On("Update", mock.Anything, existing.ID.Hex(), mock.MatchedBy(func(upd domain.BlogUpdate) bool {
		return upd.PublishedAt == nil
	})).Return(existing, nil)

	_, err := svc.Update(context.Background(), existing.ID.Hex(), domain.BlogUpdate{Status: &published})
	require.NoError(t, err)
	blogRepo.AssertExpectations(t)
}

func TestBlogService_GetPublished_IncrementsViews(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	svc := NewBlogService(blogRepo)

	blog := &domain.Blog{
		ID:        primitive.NewObjectID(),
		Slug:      "popular-post",
		Status:    domain.BlogPublished,
		ViewCount: 41,
		Comments: []domain.Comment{
			{ID: primitive.NewObjectID(), IsApproved: true},
			{ID: primitive.NewObjectID(), IsApproved: false},
		},
	}
	blogRepo.On("GetPublished", mock.Anything, "popular-post").Return(blog, nil)
	blogRepo.On("IncrementViews", mock.Anything, blog.ID).Return(nil)

	got, err := svc.GetPublished(context.Background(), "popular-post")

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ViewCount)
	// Unapproved comments never reach the public payload.
	assert.Len(t, got.Comments, 1)
}

func TestBlogService_AddComment_StartsUnapproved(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	svc := NewBlogService(blogRepo)

	blogID := primitive.NewObjectID().Hex()
	blogRepo.On("AddComment", mock.Anything, blogID, mock.AnythingOfType("*domain.Comment")).Return(nil)

	comment, err := svc.AddComment(context.Background(), blogID, domain.CommentCreate{
		Author:  "Visitor",
		Email:   "visitor@example.com",
		Content: "Great write-up, thanks.",
	}, "203.0.113.7", "curl/8.0")

	require.NoError(t, err)
	assert.False(t, comment.IsApproved)
	assert.Equal(t, "203.0.113.7", comment.IPAddress)
	assert.False(t, comment.ID.IsZero())
}

func TestBlogService_AddComment_UnpublishedBlog(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	svc := NewBlogService(blogRepo)

	blogID := primitive.NewObjectID().Hex()
	blogRepo.On("AddComment", mock.Anything, blogID, mock.AnythingOfType("*domain.Comment")).Return(mongo.ErrNoDocuments)

	_, err := svc.AddComment(context.Background(), blogID, domain.CommentCreate{
		Author:  "Visitor",
		Email:   "visitor@example.com",
		Content: "Hello there.",
	}, "", "")

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestBlogService_GetComments_ApprovedNewestFirstPaginated(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	svc := NewBlogService(blogRepo)

	base := time.Now().Add(-time.Hour)
	comments := make([]domain.Comment, 0, 5)
	for i := 0; i < 5; i++ {
		comments = append(comments, domain.Comment{
			ID:         primitive.NewObjectID(),
			IsApproved: i != 2, // one rejected comment in the middle
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}
	blog := &domain.Blog{
		ID:       primitive.NewObjectID(),
		Status:   domain.BlogPublished,
		Comments: comments,
	}
	blogRepo.On("GetPublished", mock.Anything, blog.ID.Hex()).Return(blog, nil)

	params := url.Values{"page": {"1"}, "limit": {"2"}}
	got, meta, err := svc.GetComments(context.Background(), blog.ID.Hex(), params)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(4), meta.Total)
	assert.Equal(t, int64(2), meta.TotalPage)
	// Newest first.
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
}

func TestBlogService_ModerateComment(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	svc := NewBlogService(blogRepo)

	commentID := primitive.NewObjectID()
	approved := &domain.Comment{ID: commentID, IsApproved: true}
	blogRepo.On("SetCommentApproval", mock.Anything, commentID.Hex(), true).Return(approved, nil)

	comment, err := svc.ModerateComment(context.Background(), commentID.Hex(), domain.CommentModerate{Action: "approve"})

	require.NoError(t, err)
	assert.True(t, comment.IsApproved)
}

func TestBlogService_ModerateComment_NotFound(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	svc := NewBlogService(blogRepo)

	commentID := primitive.NewObjectID().Hex()
	blogRepo.On("SetCommentApproval", mock.Anything, commentID, false).Return(nil, mongo.ErrNoDocuments)

	_, err := svc.ModerateComment(context.Background(), commentID, domain.CommentModerate{Action: "reject"})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestBlogService_ListStripsComments(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	svc := NewBlogService(blogRepo)

	blogs := []domain.Blog{{
		ID:       primitive.NewObjectID(),
		Status:   domain.BlogPublished,
		Comments: []domain.Comment{{ID: primitive.NewObjectID(), IsApproved: true}},
	}}
	meta := &domain.ListMeta{Page: 1, Limit: 10, Total: 1, TotalPage: 1}
	blogRepo.On("ListPublished", mock.Anything, mock.Anything).Return(blogs, meta, nil)

	got, _, err := svc.ListPublished(context.Background(), url.Values{})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Comments)
}
