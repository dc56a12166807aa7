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

var _ domain.ProjectRepository = (*ProjectRepository)(nil)

// ProjectRepository handles portfolio project data access
type ProjectRepository struct {
	coll *mongo.Collection
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectsColl)}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, project)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	project.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var project domain.Project
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// List runs the generic list query over the projects collection
func (r *ProjectRepository) List(ctx context.Context, params url.Values) ([]domain.Project, *domain.ListMeta, error) {
	qb := NewQueryBuilder(r.coll, nil, params).
		Search("title", "description", "features").
		Filter().
		Sort().
		Paginate().
		Fields()

	projects := []domain.Project{}
	if err := qb.Exec(ctx, &projects); err != nil {
		return nil, nil, fmt.Errorf("failed to list projects: %w", err)
	}

	meta, err := qb.Meta(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count projects: %w", err)
	}
	return projects, meta, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id string, upd domain.ProjectUpdate) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Features != nil {
		set["features"] = *upd.Features
	}
	if upd.DemoLink != nil {
		set["demoLink"] = *upd.DemoLink
	}
	if upd.GithubFrontend != nil {
		set["githubFrontend"] = *upd.GithubFrontend
	}
	if upd.GithubBackend != nil {
		set["githubBackend"] = *upd.GithubBackend
	}
	if upd.Stacks != nil {
		stacks := make([]primitive.ObjectID, 0, len(*upd.Stacks))
		for _, s := range *upd.Stacks {
			oid, err := primitive.ObjectIDFromHex(s)
			if err != nil {
				return nil, err
			}
			stacks = append(stacks, oid)
		}
		set["stacks"] = stacks
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var project domain.Project
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&project)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
