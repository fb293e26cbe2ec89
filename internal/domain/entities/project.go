package entities

import "strings"

type ProjectRole string

const (
	ProjectRoleOwner ProjectRole = "owner"
	ProjectRoleEdit  ProjectRole = "edit"
	ProjectRoleView  ProjectRole = "view"
)

// Address is the project location. Quote requests keep a copy taken at request
// time so later project edits never change a stored request.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country,omitempty"`
	Postal  string `json:"postal,omitempty"`
}

// Location renders "city, region, country" skipping empty parts.
func (a Address) Location() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.City, a.Region, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Project is the subset of the project record the quote flow reads.
type Project struct {
	ID          string  `json:"id"`
	OwnerUserID string  `json:"user_id"`
	Name        string  `json:"name"`
	Address     Address `json:"address"`
}

const UnnamedProject = "Unnamed Project"

func (p Project) DisplayName() string {
	if n := strings.TrimSpace(p.Name); n != "" {
		return n
	}
	return UnnamedProject
}

// ProjectAccess is the outcome of a permission check.
type ProjectAccess struct {
	Role    ProjectRole `json:"role"`
	Project Project     `json:"project"`
}

// Customer identifies the person a quote was shown to.
type Customer struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}
