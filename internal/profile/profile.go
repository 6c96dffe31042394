// Package profile provides loading and validation of the canonical candidate
// profile. The profile is the source of truth for identity, section ordering,
// and entity titles; generated content is joined back onto it by normalized
// key equality, never by position.
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-tailor/internal/extract"
	"github.com/jonathan/resume-tailor/internal/schemas"
)

// Profile is the canonical candidate profile.
type Profile struct {
	Name           string       `json:"name" validate:"required"`
	Title          string       `json:"title,omitempty"`
	Email          string       `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string       `json:"phone,omitempty"`
	Links          Links        `json:"links,omitempty"`
	Skills         []string     `json:"skills,omitempty"`
	Experience     []Experience `json:"experience" validate:"dive"`
	Projects       []Project    `json:"projects,omitempty" validate:"dive"`
	Education      []Education  `json:"education,omitempty" validate:"dive"`
	Certifications []string     `json:"certifications,omitempty"`
	Achievements   []string     `json:"achievements,omitempty"`
}

// Links holds the candidate's public profile URLs.
type Links struct {
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Experience is one dated role at one company, with the projects worked on
// in that role.
type Experience struct {
	Role     string    `json:"role" validate:"required"`
	Company  string    `json:"company" validate:"required"`
	Start    string    `json:"start,omitempty"`
	End      string    `json:"end,omitempty"`
	Projects []Project `json:"projects,omitempty" validate:"dive"`
}

// Project is a titled project, either under a role or standalone.
type Project struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description,omitempty"`
	Tech        []string `json:"tech,omitempty"`
}

// Education is one degree entry.
type Education struct {
	Degree string `json:"degree" validate:"required"`
	School string `json:"school" validate:"required"`
	CGPA   string `json:"cgpa,omitempty"`
	Year   string `json:"year,omitempty"`
}

// RoleKey returns the normalized lookup key for this role, matching the
// ROLE_ID the generator is asked to echo back.
func (e *Experience) RoleKey() string {
	return extract.NormalizeKey(e.Role)
}

// Key returns the normalized lookup key for this project title.
func (p *Project) Key() string {
	return extract.NormalizeKey(p.Title)
}

// Load reads a profile JSON file and validates it, first against the
// embedded JSON Schema (shape), then with struct tag validation (field
// rules). Both must pass.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates and unmarshals raw profile JSON.
func Parse(data []byte) (*Profile, error) {
	if err := schemas.ValidateProfile(data); err != nil {
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	if err := validator.New().Struct(&p); err != nil {
		return nil, fmt.Errorf("profile field validation failed: %w", err)
	}

	return &p, nil
}
