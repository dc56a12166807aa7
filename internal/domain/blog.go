package domain

import (
	"context"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogStatus is the post lifecycle state.
type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
	BlogArchived  BlogStatus = "archived"
)

func (s BlogStatus) Valid() bool {
	switch s {
	case BlogDraft, BlogPublished, BlogArchived:
		return true
	}
	return false
}

// BlogCategory is the closed set of post categories.
type BlogCategory string

const (
	CategoryTechnology        BlogCategory = "Technology"
	CategoryWebDevelopment    BlogCategory = "Web Development"
	CategoryMobileDevelopment BlogCategory = "Mobile Development"
	CategoryProgramming       BlogCategory = "Programming"
	CategoryTutorial          BlogCategory = "Tutorial"
	CategoryPersonal          BlogCategory = "Personal"
	CategoryCareer            BlogCategory = "Career"
	CategoryTools             BlogCategory = "Tools"
	CategoryReview            BlogCategory = "Review"
	CategoryOther             BlogCategory = "Other"
)

func (c BlogCategory) Valid() bool {
	switch c {
	case CategoryTechnology, CategoryWebDevelopment, CategoryMobileDevelopment,
		CategoryProgramming, CategoryTutorial, CategoryPersonal,
		CategoryCareer, CategoryTools, CategoryReview, CategoryOther:
		return true
	}
	return false
}

// Comment is an anonymous visitor comment embedded in its blog document.
// Comments start unapproved and only become publicly visible after the
// owner approves them.
type Comment struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Author     string             `bson:"author" json:"author"`
	Email      string             `bson:"email" json:"email"`
	Website    string             `bson:"website,omitempty" json:"website,omitempty"`
	Content    string             `bson:"content" json:"content"`
	IsApproved bool               `bson:"isApproved" json:"isApproved"`
	IPAddress  string             `bson:"ipAddress,omitempty" json:"-"`
	UserAgent  string             `bson:"userAgent,omitempty" json:"-"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Blog is a post authored by the owner. Comments live inside the document.
type Blog struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Slug          string             `bson:"slug" json:"slug"`
	Excerpt       string             `bson:"excerpt" json:"excerpt"`
	Content       string             `bson:"content" json:"content"`
	FeaturedImage string             `bson:"featuredImage,omitempty" json:"featuredImage,omitempty"`
	Author        primitive.ObjectID `bson:"author" json:"author"`
	Category      BlogCategory       `bson:"category" json:"category"`
	Tags          []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Status        BlogStatus         `bson:"status" json:"status"`
	IsFeature     bool               `bson:"isFeature" json:"isFeature"`
	ViewCount     int64              `bson:"viewCount" json:"viewCount"`
	CommentCount  int64              `bson:"commentCount" json:"commentCount"`
	Comments      []Comment          `bson:"comments" json:"comments,omitempty"`
	PublishedAt   *time.Time         `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ApprovedComments returns the publicly visible subset.
func (b *Blog) ApprovedComments() []Comment {
	approved := make([]Comment, 0, len(b.Comments))
	for _, c := range b.Comments {
		if c.IsApproved {
			approved = append(approved, c)
		}
	}
	return approved
}

type BlogCreate struct {
	Title         string   `json:"title" validate:"required,min=5,max=200"`
	Excerpt       string   `json:"excerpt" validate:"required,min=20,max=500"`
	Content       string   `json:"content" validate:"required,min=100,max=50000"`
	FeaturedImage string   `json:"featuredImage" validate:"omitempty,max=500"`
	Category      string   `json:"category" validate:"required"`
	Tags          []string `json:"tags" validate:"omitempty,dive,max=50"`
	Status        string   `json:"status"`
	IsFeature     bool     `json:"isFeature"`
}

type BlogUpdate struct {
	Title         *string   `json:"title" validate:"omitempty,min=5,max=200"`
	Excerpt       *string   `json:"excerpt" validate:"omitempty,min=20,max=500"`
	Content       *string   `json:"content" validate:"omitempty,min=100,max=50000"`
	FeaturedImage *string   `json:"featuredImage" validate:"omitempty,max=500"`
	Category      *string   `json:"category"`
	Tags          *[]string `json:"tags" validate:"omitempty,dive,max=50"`
	Status        *string   `json:"status"`
	IsFeature     *bool     `json:"isFeature"`
	// Slug is derived from Title, never accepted from the client.
	Slug *string `json:"-"`
	// PublishedAt is stamped by the service on a draft-to-published
	// transition.
	PublishedAt *time.Time `json:"-"`
}

type CommentCreate struct {
	Author  string `json:"author" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Website string `json:"website" validate:"omitempty,url"`
	Content string `json:"content" validate:"required,min=5,max=1000"`
}

type CommentModerate struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

type BlogRepository interface {
	Create(ctx context.Context, blog *Blog) error
	GetByID(ctx context.Context, id string) (*Blog, error)
	// GetPublished resolves an id or a slug, restricted to published posts.
	GetPublished(ctx context.Context, identifier string) (*Blog, error)
	ListAdmin(ctx context.Context, params url.Values) ([]Blog, *ListMeta, error)
	ListPublished(ctx context.Context, params url.Values) ([]Blog, *ListMeta, error)
	Update(ctx context.Context, id string, upd BlogUpdate) (*Blog, error)
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
	// AddComment pushes onto a published blog's comment array; the comment
	// id must be set by the caller.
	AddComment(ctx context.Context, blogID string, comment *Comment) error
	// SetCommentApproval flips the approval flag across all blogs and
	// returns the updated comment.
	SetCommentApproval(ctx context.Context, commentID string, approved bool) (*Comment, error)
}
