package profiles

import (
	"fmt"
	"strings"
)

// ExtractionPrompt builds the system instruction for structured profile
// extraction. It enumerates every target field and quotes the closed
// enumeration lists so the model snaps values onto allowed entries.
func ExtractionPrompt() string {
	var b strings.Builder
	b.WriteString("You are a non-profit organization profile parser. Extract the following information from the proposal/document text and return it as JSON:\n\n")
	b.WriteString("- organizationName: The name of the non-profit organization\n")
	b.WriteString("- ein: Employer Identification Number (EIN/Tax ID)\n")
	b.WriteString("- missionStatement: The organization's mission statement\n")
	b.WriteString("- yearFounded: The year the organization was founded (as a string)\n")
	b.WriteString("- locationServed: Geographic location or area served by the organization\n")
	b.WriteString("- biggestAccomplishment: Their biggest or most notable accomplishment\n")
	b.WriteString("- oneSentenceSummary: What they do summarized in one sentence\n")
	fmt.Fprintf(&b, "- legalDesignation: Legal designation. Must be exactly one of: %s\n", quoteList(LegalDesignations))
	fmt.Fprintf(&b, "- primaryCauseAreas: Array of primary cause areas. Each entry must be exactly one of: %s\n", quoteList(PrimaryCauseAreas))
	fmt.Fprintf(&b, "- populations: Array of populations served. Each entry must be exactly one of: %s\n", quoteList(Populations))
	fmt.Fprintf(&b, "- geographicalFocus: Geographical focus. Must be exactly one of: %s\n", quoteList(GeographicFocusOptions))
	b.WriteString("\nIf any field is not found in the text, set it to null (except primaryCauseAreas and populations which should be empty arrays).\n")
	b.WriteString("Be thorough and extract as much relevant information as possible from the document.\n")
	b.WriteString("Return ONLY valid JSON, no additional text.")
	return b.String()
}

func quoteList(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, fmt.Sprintf("%q", v))
	}
	return strings.Join(quoted, ", ")
}
