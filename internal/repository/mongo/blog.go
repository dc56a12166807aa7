package mongo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/rensmac/portfolio-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ domain.BlogRepository = (*BlogRepository)(nil)

// blogSearchFields are the fields the searchTerm parameter matches against.
var blogSearchFields = []string{"title", "content", "tags"}

// BlogRepository handles blog post data access, including the embedded
// comment array.
type BlogRepository struct {
	coll *mongo.Collection
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *DB) *BlogRepository {
	return &BlogRepository{coll: db.Collection(blogsColl)}
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	if blog.Comments == nil {
		blog.Comments = []domain.Comment{}
	}

	result, err := r.coll.InsertOne(ctx, blog)
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}
	blog.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// GetPublished resolves an id or slug, restricted to published posts
func (r *BlogRepository) GetPublished(ctx context.Context, identifier string) (*domain.Blog, error) {
	filter := bson.M{"status": domain.BlogPublished}
	if oid, err := primitive.ObjectIDFromHex(identifier); err == nil {
		filter["_id"] = oid
	} else {
		filter["slug"] = identifier
	}
	return r.findOne(ctx, filter)
}

func (r *BlogRepository) findOne(ctx context.Context, filter bson.M) (*domain.Blog, error) {
	var blog domain.Blog
	err := r.coll.FindOne(ctx, filter).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return &blog, nil
}

// ListAdmin lists blogs in every status
func (r *BlogRepository) ListAdmin(ctx context.Context, params url.Values) ([]domain.Blog, *domain.ListMeta, error) {
	return r.list(ctx, nil, params)
}

// ListPublished lists published blogs only
func (r *BlogRepository) ListPublished(ctx context.Context, params url.Values) ([]domain.Blog, *domain.ListMeta, error) {
	return r.list(ctx, bson.M{"status": domain.BlogPublished}, params)
}

func (r *BlogRepository) list(ctx context.Context, base bson.M, params url.Values) ([]domain.Blog, *domain.ListMeta, error) {
	qb := NewQueryBuilder(r.coll, base, params).
		Search(blogSearchFields...).
		Filter().
		Sort().
		Paginate().
		Fields()

	blogs := []domain.Blog{}
	if err := qb.Exec(ctx, &blogs); err != nil {
		return nil, nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	meta, err := qb.Meta(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count blogs: %w", err)
	}
	return blogs, meta, nil
}

func (r *BlogRepository) Update(ctx context.Context, id string, upd domain.BlogUpdate) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Slug != nil {
		set["slug"] = *upd.Slug
	}
	if upd.Excerpt != nil {
		set["excerpt"] = *upd.Excerpt
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.FeaturedImage != nil {
		set["featuredImage"] = *upd.FeaturedImage
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Tags != nil {
		set["tags"] = *upd.Tags
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.IsFeature != nil {
		set["isFeature"] = *upd.IsFeature
	}
	if upd.PublishedAt != nil {
		set["publishedAt"] = *upd.PublishedAt
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var blog domain.Blog
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&blog)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SlugExists reports whether another blog already uses the slug
func (r *BlogRepository) SlugExists(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

// IncrementViews bumps the view counter without rewriting the document
func (r *BlogRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"viewCount": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

// AddComment pushes a comment onto a published blog
func (r *BlogRepository) AddComment(ctx context.Context, blogID string, comment *domain.Comment) error {
	oid, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": oid, "status": domain.BlogPublished}
	update := bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetCommentApproval flips the approval flag via a positional update and
// recounts approved comments on the owning blog.
func (r *BlogRepository) SetCommentApproval(ctx context.Context, commentID string, approved bool) (*domain.Comment, error) {
	cid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"comments._id": cid}
	update := bson.M{"$set": bson.M{
		"comments.$.isApproved": approved,
		"comments.$.updatedAt":  time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var blog domain.Blog
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&blog); err != nil {
		return nil, err
	}

	// Keep the denormalized counter in line with the approved subset.
	approvedCount := int64(len(blog.ApprovedComments()))
	if _, err := r.coll.UpdateByID(ctx, blog.ID, bson.M{"$set": bson.M{"commentCount": approvedCount}}); err != nil {
		return nil, fmt.Errorf("failed to update comment count: %w", err)
	}

	for i := range blog.Comments {
		if blog.Comments[i].ID == cid {
			return &blog.Comments[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
