package resumes

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"causematch-backend/internal/llm"
)

// ErrInvalidInput marks validation failures in resume operations.
var ErrInvalidInput = errors.New("invalid input")

// Service contains resume business logic.
type Service struct {
	Repo Repo
	LLM  llm.Client
}

// Extract runs structured extraction over resume text. The result is a
// preview; nothing is stored until the caller posts it back.
func (s *Service) Extract(ctx context.Context, text string) (ExtractedFields, error) {
	if strings.TrimSpace(text) == "" {
		return ExtractedFields{}, ErrInvalidInput
	}
	raw, err := s.LLM.Complete(ctx, ExtractionPrompt(), text)
	if err != nil {
		return ExtractedFields{}, err
	}
	return ParseExtracted(raw)
}

// Create stores a reviewed resume.
func (s *Service) Create(ctx context.Context, in Input) (Resume, error) {
	if strings.TrimSpace(in.FileName) == "" || strings.TrimSpace(in.FileType) == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.Create(ctx, in.toResume(uuid.NewString()))
}

// Get returns one resume by id.
func (s *Service) Get(ctx context.Context, id string) (Resume, error) {
	return s.Repo.GetByID(ctx, id)
}

// List pages through the collection, newest first. Out-of-range page
// parameters clamp rather than error.
func (s *Service) List(ctx context.Context, page, pageSize int) ([]Resume, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	listed, total, err := s.Repo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	if listed == nil {
		listed = []Resume{}
	}
	return listed, total, nil
}

// Delete removes one resume by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
