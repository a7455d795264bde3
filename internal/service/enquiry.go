package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"siteapi/internal/model"
	"siteapi/internal/repository"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
)

// EnquiryService defines the use cases for contact-form enquiries.
type EnquiryService interface {
	// Create validates and stores a new enquiry submission.
	Create(ctx context.Context, e *model.Enquiry) (*model.Enquiry, error)

	// List returns all enquiries, newest first.
	List(ctx context.Context) ([]model.Enquiry, error)

	// Delete removes an enquiry by ID.
	Delete(ctx context.Context, id string) error
}

type enquiryService struct {
	repo repository.EnquiryRepository
}

// NewEnquiryService constructs a new EnquiryService.
func NewEnquiryService(repo repository.EnquiryRepository) EnquiryService {
	return &enquiryService{repo: repo}
}

func (s *enquiryService) Create(ctx context.Context, e *model.Enquiry) (*model.Enquiry, error) {
	if strings.TrimSpace(e.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(e.Email) == "" {
		return nil, ErrEmailRequired
	}

	e.ID = uuid.New().String()
	e.CreatedAt = time.Now().UTC()
	return s.repo.Create(ctx, e)
}

func (s *enquiryService) List(ctx context.Context) ([]model.Enquiry, error) {
	return s.repo.List(ctx)
}

func (s *enquiryService) Delete(ctx context.Context, id string) error {
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
