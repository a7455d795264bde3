package service

import (
	"context"
	"database/sql"
	"errors"

	"siteapi/internal/model"
	"siteapi/internal/repository"
)

// LandingService defines the use cases for the landing-content document.
type LandingService interface {
	// Get returns the stored document, or the built-in default when nothing
	// has ever been saved. The default is never persisted by a read.
	Get(ctx context.Context) (*model.Landing, error)

	// Save applies the submitted sections over the stored document (present
	// sections replace wholesale, absent sections are kept) and persists the
	// result, creating the document when it does not exist yet.
	Save(ctx context.Context, upd *model.LandingUpdate) (*model.Landing, error)
}

type landingService struct {
	repo repository.LandingRepository
}

// NewLandingService constructs a new LandingService.
func NewLandingService(repo repository.LandingRepository) LandingService {
	return &landingService{repo: repo}
}

func (s *landingService) Get(ctx context.Context) (*model.Landing, error) {
	l, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DefaultLanding(), nil
		}
		return nil, err
	}
	return l, nil
}

func (s *landingService) Save(ctx context.Context, upd *model.LandingUpdate) (*model.Landing, error) {
	base, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		// First save creates the document from the payload as given;
		// omitted sections start out empty.
		base = &model.Landing{}
	}
	upd.Apply(base)
	return s.repo.Upsert(ctx, base)
}

// DefaultLanding is the document served before an admin ever saves one.
// Callers get a fresh value each time; mutating it affects nothing.
func DefaultLanding() *model.Landing {
	return &model.Landing{
		Hero: model.Hero{
			Title:    "Welcome to Blizzen Creations",
			Subtitle: "Your IT Career Starts Here",
			CTA:      "Enroll Now",
		},
		About: model.About{
			Description: "Blizzen Creations is a premier IT training institute empowering students with industry-ready skills.",
		},
		Courses: []model.Course{
			{
				Title:               "Fullstack Development",
				Duration:            "3 Months",
				CareerOpportunities: "Frontend Developer, Backend Developer, Fullstack Developer",
				Technologies:        []string{"React", "Node.js", "MongoDB"},
				Roles:               []string{"Developer"},
			},
			{
				Title:               "Data Science",
				Duration:            "4 Months",
				CareerOpportunities: "Data Analyst, Data Scientist",
				Technologies:        []string{"Python", "SQL", "Machine Learning"},
				Roles:               []string{"Analyst", "Scientist"},
			},
		},
		Features: []model.Feature{
			{Title: "Industry-Focused", Description: "Curriculum designed with current market demands"},
			{Title: "Expert Mentorship", Description: "Learn from working IT professionals"},
			{Title: "Job-Ready Skills", Description: "Hands-on projects to prepare for real-world jobs"},
		},
		Stats: []model.Stat{
			{Label: "Students Trained", Value: "500+"},
			{Label: "Courses", Value: "10+"},
			{Label: "Placements", Value: "100%+"},
		},
		Testimonials: []model.Testimonial{
			{
				Name:   "John Doe",
				Role:   "Software Engineer",
				Quote:  "Blizzen Creations completely transformed my career. Within 2 months, I got placed in a good company. Highly recommended!",
				Rating: 5,
			},
			{
				Name:   "Jane Smith",
				Role:   "Data Analyst",
				Quote:  "The trainers are very supportive and classes are fully practical. Best IT training institute in Chennai!",
				Rating: 5,
			},
		},
		Contact: model.Contact{
			Phone:   "+91 9884264816",
			Email:   "blizzencreations@gmail.com",
			Address: "Anna Nagar, Chennai, India",
		},
	}
}
