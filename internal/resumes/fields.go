package resumes

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ExtractedFields is the typed result of structured resume extraction.
type ExtractedFields struct {
	FullName        *string  `json:"fullName"`
	Email           *string  `json:"email"`
	Phone           *string  `json:"phone"`
	LastJob         *string  `json:"lastJob"`
	LastCompany     *string  `json:"lastCompany"`
	YearsExperience *string  `json:"yearsExperience"`
	TechnicalSkills []string `json:"technicalSkills"`
	Education       *string  `json:"education"`
	Summary         *string  `json:"summary"`
}

// ExtractionPrompt builds the system instruction for resume parsing.
func ExtractionPrompt() string {
	var b strings.Builder
	b.WriteString("You are a resume parser. Extract the following information from the resume text and return it as JSON:\n\n")
	b.WriteString("- fullName: The candidate's full name\n")
	b.WriteString("- email: Email address\n")
	b.WriteString("- phone: Phone number\n")
	b.WriteString("- lastJob: Most recent job title\n")
	b.WriteString("- lastCompany: Most recent employer\n")
	b.WriteString("- yearsExperience: Total years of professional experience (as a string)\n")
	b.WriteString("- technicalSkills: Array of technical skills\n")
	b.WriteString("- education: Highest or most relevant education\n")
	b.WriteString("- summary: The candidate summarized in one or two sentences\n")
	b.WriteString("\nIf any field is not found in the text, set it to null (except technicalSkills which should be an empty array).\n")
	b.WriteString("Return ONLY valid JSON, no additional text.")
	return b.String()
}

// ParseExtracted maps raw model output into ExtractedFields, defaulting
// absent or invalid fields.
func ParseExtracted(raw string) (ExtractedFields, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return ExtractedFields{}, fmt.Errorf("malformed extraction response: %w", err)
	}

	return ExtractedFields{
		FullName:        stringField(m, "fullName"),
		Email:           stringField(m, "email"),
		Phone:           stringField(m, "phone"),
		LastJob:         stringField(m, "lastJob"),
		LastCompany:     stringField(m, "lastCompany"),
		YearsExperience: stringField(m, "yearsExperience"),
		TechnicalSkills: stringSliceField(m, "technicalSkills"),
		Education:       stringField(m, "education"),
		Summary:         stringField(m, "summary"),
	}, nil
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
