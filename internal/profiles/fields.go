package profiles

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ExtractedFields is the typed result of a structured extraction call.
// Scalar fields are nil when the source text carried no matching signal;
// array fields default to empty slices. Out-of-enumeration values pass
// through untouched since enum snapping is advisory on the model side.
type ExtractedFields struct {
	OrganizationName      *string  `json:"organizationName"`
	EIN                   *string  `json:"ein"`
	MissionStatement      *string  `json:"missionStatement"`
	YearFounded           *string  `json:"yearFounded"`
	LocationServed        *string  `json:"locationServed"`
	BiggestAccomplishment *string  `json:"biggestAccomplishment"`
	OneSentenceSummary    *string  `json:"oneSentenceSummary"`
	LegalDesignation      *string  `json:"legalDesignation"`
	PrimaryCauseAreas     []string `json:"primaryCauseAreas"`
	Populations           []string `json:"populations"`
	GeographicalFocus     *string  `json:"geographicalFocus"`
}

// ParseExtracted maps the raw model output into ExtractedFields field by
// field, defaulting absent or invalid fields rather than trusting the
// external shape.
func ParseExtracted(raw string) (ExtractedFields, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return ExtractedFields{}, fmt.Errorf("malformed extraction response: %w", err)
	}

	return ExtractedFields{
		OrganizationName:      stringField(m, "organizationName"),
		EIN:                   stringField(m, "ein"),
		MissionStatement:      stringField(m, "missionStatement"),
		YearFounded:           stringField(m, "yearFounded"),
		LocationServed:        stringField(m, "locationServed"),
		BiggestAccomplishment: stringField(m, "biggestAccomplishment"),
		OneSentenceSummary:    stringField(m, "oneSentenceSummary"),
		LegalDesignation:      stringField(m, "legalDesignation"),
		PrimaryCauseAreas:     stringSliceField(m, "primaryCauseAreas"),
		Populations:           stringSliceField(m, "populations"),
		GeographicalFocus:     stringField(m, "geographicalFocus"),
	}, nil
}

// Merge overlays extracted fields onto the profile draft. Fields the
// extraction produced overwrite same-named draft fields; nil scalars and all
// fields outside the extraction contract, including the file reference
// triple, are preserved.
func (p Profile) Merge(f ExtractedFields) Profile {
	merged := p
	overlay(&merged.OrganizationName, f.OrganizationName)
	overlay(&merged.EIN, f.EIN)
	overlay(&merged.MissionStatement, f.MissionStatement)
	overlay(&merged.YearFounded, f.YearFounded)
	overlay(&merged.LocationServed, f.LocationServed)
	overlay(&merged.BiggestAccomplishment, f.BiggestAccomplishment)
	overlay(&merged.OneSentenceSummary, f.OneSentenceSummary)
	overlay(&merged.LegalDesignation, f.LegalDesignation)
	overlay(&merged.GeographicalFocus, f.GeographicalFocus)
	if f.PrimaryCauseAreas != nil {
		merged.PrimaryCauseAreas = f.PrimaryCauseAreas
	}
	if f.Populations != nil {
		merged.Populations = f.Populations
	}
	return merged
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func stringField(m map[string]json.RawMessage, key string) *string {
	raw, ok := m[key]
	if !ok {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return nil
		}
		return &s
	}

	// Models occasionally emit numbers for fields like yearFounded.
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		formatted := strconv.FormatFloat(n, 'f', -1, 64)
		return &formatted
	}

	return nil
}

func stringSliceField(m map[string]json.RawMessage, key string) []string {
	raw, ok := m[key]
	if !ok {
		return []string{}
	}

	var values []any
	if err := json.Unmarshal(raw, &values); err != nil {
		return []string{}
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
