package profiles

import (
	"strconv"
	"strings"
	"testing"
)

func TestExtractionPromptQuotesEveryEnumValue(t *testing.T) {
	prompt := ExtractionPrompt()

	lists := map[string][]string{
		"legal designations": LegalDesignations,
		"cause areas":        PrimaryCauseAreas,
		"populations":        Populations,
		"geographic focus":   GeographicFocusOptions,
	}
	for name, values := range lists {
		for _, v := range values {
			if !strings.Contains(prompt, strconv.Quote(v)) {
				t.Errorf("%s value %q missing from prompt", name, v)
			}
		}
	}
}

func TestExtractionPromptPinsNullAndArrayDefaults(t *testing.T) {
	prompt := ExtractionPrompt()

	for _, want := range []string{
		"set it to null",
		"empty arrays",
		"Return ONLY valid JSON",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
