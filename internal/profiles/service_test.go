package profiles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedLLM struct {
	response string
	err      error
	calls    int
}

func (s *scriptedLLM) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.response, s.err
}

func TestServiceSaveRejectsUnknownEnumValues(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	_, err := svc.Save(context.Background(), "user-1", Input{
		LegalDesignation: "Totally Made Up Entity",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Save(context.Background(), "user-1", Input{
		PrimaryCauseAreas: []string{"Education", "Not A Cause"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Save(context.Background(), "user-1", Input{
		GeographicalFocus: "Intergalactic",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestServiceSaveIsIdempotentPerUser(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}

	first, err := svc.Save(context.Background(), "user-1", Input{OrganizationName: "Alpha"})
	require.NoError(t, err)

	second, err := svc.Save(context.Background(), "user-1", Input{OrganizationName: "Alpha Renamed"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "save must update the existing row, not create a second one")
	assert.Equal(t, "Alpha Renamed", second.OrganizationName)

	listed, err := repo.ListForSwipe(context.Background(), "someone-else")
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestServiceUpdateFileReferenceRequiresAllThree(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	cases := [][3]string{
		{"", "key", "url"},
		{"name.pdf", "", "url"},
		{"name.pdf", "key", ""},
		{"  ", "key", "url"},
	}
	for _, c := range cases {
		_, err := svc.UpdateFileReference(context.Background(), "user-1", c[0], c[1], c[2])
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestServiceUpdateFileReferencePreservesProfileData(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}

	_, err := svc.Save(context.Background(), "user-1", Input{
		OrganizationName: "Alpha",
		EIN:              "12-3456789",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateFileReference(context.Background(), "user-1", "new.pdf", "proposals/1_new.pdf", "local://proposals/1_new.pdf")
	require.NoError(t, err)

	assert.Equal(t, "new.pdf", updated.FileName)
	assert.Equal(t, "Alpha", updated.OrganizationName)
	assert.Equal(t, "12-3456789", updated.EIN)
}

func TestServiceExtractDraftMergesWithoutPersisting(t *testing.T) {
	repo := NewMemoryRepo()
	llmClient := &scriptedLLM{response: `{"organizationName":"Extracted Org","populations":["Families"]}`}
	svc := &Service{Repo: repo, LLM: llmClient}

	saved, err := svc.Save(context.Background(), "user-1", Input{
		OrganizationName: "Saved Org",
		EIN:              "12-3456789",
	})
	require.NoError(t, err)

	fields, draft, err := svc.ExtractDraft(context.Background(), "user-1", "some proposal text")
	require.NoError(t, err)
	assert.Equal(t, 1, llmClient.calls)

	require.NotNil(t, fields.OrganizationName)
	assert.Equal(t, "Extracted Org", *fields.OrganizationName)

	assert.Equal(t, "Extracted Org", draft.OrganizationName)
	assert.Equal(t, "12-3456789", draft.EIN, "draft keeps saved fields the extraction missed")
	assert.Equal(t, []string{"Families"}, draft.Populations)

	// Extraction is preview only. The stored profile must be untouched.
	current, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, saved.OrganizationName, current.OrganizationName)
	assert.Equal(t, saved.UpdatedAt, current.UpdatedAt)
}

func TestServiceExtractDraftWithoutSavedProfile(t *testing.T) {
	llmClient := &scriptedLLM{response: `{"organizationName":"Fresh Org"}`}
	svc := &Service{Repo: NewMemoryRepo(), LLM: llmClient}

	_, draft, err := svc.ExtractDraft(context.Background(), "user-1", "text")
	require.NoError(t, err)

	assert.Equal(t, "Fresh Org", draft.OrganizationName)
	assert.Equal(t, "user-1", draft.UserID)
}

func TestServiceExtractDraftRejectsEmptyText(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), LLM: &scriptedLLM{}}

	_, _, err := svc.ExtractDraft(context.Background(), "user-1", "   \n\t")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
