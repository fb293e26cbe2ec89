package request

import (
	"strings"

	"tradequote/internal/usecase"
)

// CreateQuoteRequest asks for vendor quotes on one segment of a project.
// Field rules are checked by the quote use case so errors name the field.
type CreateQuoteRequest struct {
	Segment     string         `json:"segment"`
	ProjectSqft float64        `json:"project_sqft"`
	Options     map[string]any `json:"options"`
	ChatID      string         `json:"chat_id"`
}

func (r CreateQuoteRequest) ToInput(projectID string) usecase.CreateQuoteInput {
	opts := r.Options
	if opts == nil {
		opts = map[string]any{}
	}
	return usecase.CreateQuoteInput{
		ProjectID:   strings.TrimSpace(projectID),
		Segment:     strings.TrimSpace(r.Segment),
		ProjectSqft: r.ProjectSqft,
		Options:     opts,
		ChatID:      strings.TrimSpace(r.ChatID),
	}
}
