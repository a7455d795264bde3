package model

import "time"

// Landing is the single marketing-content document behind the public landing
// page. At most one instance exists; it lives under a fixed singleton row id
// and every admin save replaces whole sections at a time.
type Landing struct {
	Hero         Hero          `json:"hero"`
	About        About         `json:"about"`
	Courses      []Course      `json:"courses"`
	Features     []Feature     `json:"features"`
	Stats        []Stat        `json:"stats"`
	Testimonials []Testimonial `json:"testimonials"`
	Contact      Contact       `json:"contact"`
	CreatedAt    time.Time     `json:"createdAt,omitempty"`
	UpdatedAt    time.Time     `json:"updatedAt,omitempty"`
}

type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}

type About struct {
	Description string `json:"description"`
}

type Course struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
	// CareerOpportunities is display text, a comma-delimited role list.
	CareerOpportunities string   `json:"careerOpportunities"`
	Technologies        []string `json:"technologies"`
	Roles               []string `json:"roles"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Stat holds a display label and value; the value is presentation text
// such as "500+", not a number.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Testimonial struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
}

type Contact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// LandingUpdate is the save payload. Each section is a pointer so the merge
// can distinguish "section omitted, keep stored value" from "section present,
// replace wholesale". Nested structures are never patched field-by-field.
type LandingUpdate struct {
	Hero         *Hero          `json:"hero"`
	About        *About         `json:"about"`
	Courses      *[]Course      `json:"courses"`
	Features     *[]Feature     `json:"features"`
	Stats        *[]Stat        `json:"stats"`
	Testimonials *[]Testimonial `json:"testimonials"`
	Contact      *Contact       `json:"contact"`
}

// Apply overlays the update onto l: any non-nil section replaces the stored
// section in full, nil sections are left untouched.
func (u *LandingUpdate) Apply(l *Landing) {
	if u.Hero != nil {
		l.Hero = *u.Hero
	}
	if u.About != nil {
		l.About = *u.About
	}
	if u.Courses != nil {
		l.Courses = *u.Courses
	}
	if u.Features != nil {
		l.Features = *u.Features
	}
	if u.Stats != nil {
		l.Stats = *u.Stats
	}
	if u.Testimonials != nil {
		l.Testimonials = *u.Testimonials
	}
	if u.Contact != nil {
		l.Contact = *u.Contact
	}
}
