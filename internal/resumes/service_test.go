package resumes

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedLLM struct {
	response string
	err      error
}

func (s *scriptedLLM) Complete(_ context.Context, _, _ string) (string, error) {
	return s.response, s.err
}

func TestExtractParsesModelOutput(t *testing.T) {
	svc := &Service{
		Repo: NewMemoryRepo(),
		LLM: &scriptedLLM{response: `{
			"fullName": "Jordan Rivera",
			"yearsExperience": 8,
			"technicalSkills": ["Go", "Postgres"],
			"phone": ""
		}`},
	}

	fields, err := svc.Extract(context.Background(), "resume text")
	require.NoError(t, err)

	require.NotNil(t, fields.FullName)
	assert.Equal(t, "Jordan Rivera", *fields.FullName)
	require.NotNil(t, fields.YearsExperience)
	assert.Equal(t, "8", *fields.YearsExperience)
	assert.Equal(t, []string{"Go", "Postgres"}, fields.TechnicalSkills)
	assert.Nil(t, fields.Phone)
	assert.Nil(t, fields.Email)
}

func TestExtractRejectsEmptyText(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), LLM: &scriptedLLM{}}
	_, err := svc.Extract(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRequiresFileMetadata(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	_, err := svc.Create(context.Background(), Input{FileType: "pdf"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), Input{FileName: "cv.pdf"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListClampsPageParameters(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := svc.Create(ctx, Input{
			FileName: fmt.Sprintf("cv-%02d.pdf", i),
			FileType: "pdf",
		})
		require.NoError(t, err)
	}

	listed, total, err := svc.List(ctx, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, listed, DefaultPageSize)

	listed, _, err = svc.List(ctx, 2, DefaultPageSize)
	require.NoError(t, err)
	assert.Len(t, listed, 5)

	listed, total, err = svc.List(ctx, 99, DefaultPageSize)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Empty(t, listed)

	_, _, err = svc.List(ctx, 1, MaxPageSize+500)
	require.NoError(t, err)
}

func TestDeleteMissingResume(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
