package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rensmac/portfolio-api/internal/apperror"
	"github.com/rensmac/portfolio-api/internal/domain"
)

// AboutService manages the singleton profile record
type AboutService struct {
	aboutRepo domain.AboutRepository
}

// NewAboutService creates a new about service
func NewAboutService(aboutRepo domain.AboutRepository) *AboutService {
	return &AboutService{aboutRepo: aboutRepo}
}

// Create creates the profile record. Only one may exist.
func (s *AboutService) Create(ctx context.Context, input domain.AboutCreate) (*domain.About, error) {
	existing, err := s.aboutRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get about: %w", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("about record already exists")
	}

	now := time.Now()
	about := &domain.About{
		Name:       input.Name,
		About:      input.About,
		Bio:        input.Bio,
		Photo:      input.Photo,
		Experience: input.Experience,
		Projects:   input.Projects,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.aboutRepo.Create(ctx, about); err != nil {
		return nil, fmt.Errorf("failed to create about: %w", err)
	}
	return about, nil
}

// Get returns the profile record
func (s *AboutService) Get(ctx context.Context) (*domain.About, error) {
	about, err := s.aboutRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get about: %w", err)
	}
	if about == nil {
		return nil, apperror.NotFound("about record not found")
	}
	return about, nil
}

// Update applies a partial update to the profile record
func (s *AboutService) Update(ctx context.Context, input domain.AboutUpdate) (*domain.About, error) {
	existing, err := s.aboutRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get about: %w", err)
	}
	if existing == nil {
		return nil, apperror.NotFound("about record not found")
	}

	return s.aboutRepo.Update(ctx, existing.ID.Hex(), input)
}

// Delete removes the profile record
func (s *AboutService) Delete(ctx context.Context) error {
	existing, err := s.aboutRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get about: %w", err)
	}
	if existing == nil {
		return apperror.NotFound("about record not found")
	}

	return s.aboutRepo.Delete(ctx, existing.ID.Hex())
}
