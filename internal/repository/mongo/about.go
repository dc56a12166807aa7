package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rensmac/portfolio-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ domain.AboutRepository = (*AboutRepository)(nil)

// AboutRepository handles the singleton profile record
type AboutRepository struct {
	coll *mongo.Collection
}

// NewAboutRepository creates a new about repository
func NewAboutRepository(db *DB) *AboutRepository {
	return &AboutRepository{coll: db.Collection(aboutColl)}
}

func (r *AboutRepository) Create(ctx context.Context, about *domain.About) error {
	now := time.Now()
	about.CreatedAt = now
	about.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, about)
	if err != nil {
		return fmt.Errorf("failed to create about: %w", err)
	}
	about.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Get returns the singleton record, nil when none exists
func (r *AboutRepository) Get(ctx context.Context) (*domain.About, error) {
	var about domain.About
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&about)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get about: %w", err)
	}
	return &about, nil
}

// Update applies the non-nil fields and returns the updated record
func (r *AboutRepository) Update(ctx context.Context, id string, upd domain.AboutUpdate) (*domain.About, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.About != nil {
		set["about"] = *upd.About
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if upd.Photo != nil {
		set["photo"] = *upd.Photo
	}
	if upd.Experience != nil {
		set["experience"] = *upd.Experience
	}
	if upd.Projects != nil {
		set["projects"] = *upd.Projects
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var about domain.About
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&about)
	if err != nil {
		return nil, err
	}
	return &about, nil
}

func (r *AboutRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete about: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
