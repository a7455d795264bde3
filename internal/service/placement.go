package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"siteapi/internal/model"
	"siteapi/internal/repository"
)

var ErrFieldRequired = errors.New("required field is missing")

// PlacementService defines the use cases for placement records.
type PlacementService interface {
	// Create validates and stores a new placement. IsActive defaults to true
	// when records are created through this service.
	Create(ctx context.Context, p *model.Placement) (*model.Placement, error)

	// List returns placements newest-first, optionally only active ones.
	List(ctx context.Context, onlyActive bool) ([]model.Placement, error)

	// Update fully replaces a placement's fields by ID.
	Update(ctx context.Context, p *model.Placement) (*model.Placement, error)

	// Delete removes a placement by ID.
	Delete(ctx context.Context, id string) error
}

type placementService struct {
	repo repository.PlacementRepository
}

// NewPlacementService constructs a new PlacementService.
func NewPlacementService(repo repository.PlacementRepository) PlacementService {
	return &placementService{repo: repo}
}

func validatePlacement(p *model.Placement) error {
	for name, v := range map[string]string{
		"studentName": p.StudentName,
		"course":      p.Course,
		"company":     p.Company,
		"position":    p.Position,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s", ErrFieldRequired, name)
		}
	}
	return nil
}

func (s *placementService) Create(ctx context.Context, p *model.Placement) (*model.Placement, error) {
	if err := validatePlacement(p); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p.ID = uuid.New().String()
	p.IsActive = true
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.repo.Create(ctx, p)
}

func (s *placementService) List(ctx context.Context, onlyActive bool) ([]model.Placement, error) {
	return s.repo.List(ctx, onlyActive)
}

func (s *placementService) Update(ctx context.Context, p *model.Placement) (*model.Placement, error) {
	if p.ID == "" {
		return nil, ErrIDRequired
	}
	if err := validatePlacement(p); err != nil {
		return nil, err
	}
	stored, err := s.repo.Update(ctx, p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return stored, nil
}

func (s *placementService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
