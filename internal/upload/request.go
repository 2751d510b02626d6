// Package upload models the simulated video upload pipeline: request
// validation plus a cancellable task that reports bounded, deterministic
// progress before reaching a terminal state.
package upload

import (
	"fmt"
	"strings"

	"github.com/example/studyshare-platform/internal/store"
)

// Request carries the upload form fields. File contents are never read in
// this scope; only the selected file names travel with the request.
type Request struct {
	Title         string
	Description   string
	Subject       string
	Topic         string
	Difficulty    store.Difficulty
	Tags          []string
	Course        string
	IsPublic      bool
	FileName      string
	ThumbnailName string
}

// ValidationError reports every rejected field at once so the caller can
// re-prompt the user in a single pass.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid upload request: %d field(s) rejected", len(e.Fields))
}

// Validate checks the required fields. A nil return means the request is
// acceptable for the simulated pipeline.
func (r Request) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(r.Description) == "" {
		fields["description"] = "description is required"
	}
	if strings.TrimSpace(r.Subject) == "" {
		fields["subject"] = "subject is required"
	}
	if strings.TrimSpace(r.FileName) == "" {
		fields["file"] = "a video file is required"
	}
	if !store.ValidDifficulty(r.Difficulty) {
		fields["difficulty"] = "difficulty must be Beginner, Intermediate or Advanced"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
