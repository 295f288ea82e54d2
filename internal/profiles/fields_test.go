package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseExtractedDefaultsMissingFields(t *testing.T) {
	fields, err := ParseExtracted(`{"organizationName":"Food Rescue Alliance","yearFounded":2009}`)
	require.NoError(t, err)

	require.NotNil(t, fields.OrganizationName)
	assert.Equal(t, "Food Rescue Alliance", *fields.OrganizationName)

	// Numeric year is normalized to its string form.
	require.NotNil(t, fields.YearFounded)
	assert.Equal(t, "2009", *fields.YearFounded)

	assert.Nil(t, fields.EIN)
	assert.Nil(t, fields.MissionStatement)
	assert.Equal(t, []string{}, fields.PrimaryCauseAreas)
	assert.Equal(t, []string{}, fields.Populations)
}

func TestParseExtractedTreatsEmptyStringAsAbsent(t *testing.T) {
	fields, err := ParseExtracted(`{"ein":"","missionStatement":"Feed everyone."}`)
	require.NoError(t, err)

	assert.Nil(t, fields.EIN)
	require.NotNil(t, fields.MissionStatement)
	assert.Equal(t, "Feed everyone.", *fields.MissionStatement)
}

func TestParseExtractedDropsNonStringArrayEntries(t *testing.T) {
	fields, err := ParseExtracted(`{"primaryCauseAreas":["Agriculture & Food Security",42,null,""]}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Agriculture & Food Security"}, fields.PrimaryCauseAreas)
}

func TestParseExtractedRejectsMalformedJSON(t *testing.T) {
	_, err := ParseExtracted(`not json`)
	assert.Error(t, err)
}

func TestMergePreservesFileReferenceAndUnextractedFields(t *testing.T) {
	existing := Profile{
		ID:                "profile-1",
		UserID:            "user-1",
		FileName:          "proposal.pdf",
		StorageKey:        "proposals/1700000000000_proposal.pdf",
		StorageURL:        "local://proposals/1700000000000_proposal.pdf",
		OrganizationName:  "Old Name",
		EIN:               "12-3456789",
		MissionStatement:  "Original mission",
		PrimaryCauseAreas: []string{"Education"},
		Populations:       []string{"Children & Youth"},
	}

	merged := existing.Merge(ExtractedFields{
		OrganizationName:  strPtr("New Name"),
		PrimaryCauseAreas: []string{"Agriculture & Food Security"},
	})

	// Extracted values win.
	assert.Equal(t, "New Name", merged.OrganizationName)
	assert.Equal(t, []string{"Agriculture & Food Security"}, merged.PrimaryCauseAreas)

	// Absent extraction fields never clobber saved data.
	assert.Equal(t, "12-3456789", merged.EIN)
	assert.Equal(t, "Original mission", merged.MissionStatement)
	assert.Equal(t, []string{"Children & Youth"}, merged.Populations)

	// File reference is outside the extraction contract entirely.
	assert.Equal(t, existing.FileName, merged.FileName)
	assert.Equal(t, existing.StorageKey, merged.StorageKey)
	assert.Equal(t, existing.StorageURL, merged.StorageURL)
}

func TestMergeNilArraysLeaveArraysUntouched(t *testing.T) {
	existing := Profile{Populations: []string{"Veterans & Military Families"}}

	merged := existing.Merge(ExtractedFields{})

	assert.Equal(t, []string{"Veterans & Military Families"}, merged.Populations)
}
