package vision

import (
	"fmt"
	"strings"
)

// parseAnalysis pulls the tagged sections out of a model response.
func parseAnalysis(response string) (Analysis, error) {
	description, found := extractTagContent(response, "description")
	if !found {
		return Analysis{}, fmt.Errorf("missing description tag")
	}

	keywords, found := extractTagContent(response, "keywords")
	if !found {
		return Analysis{}, fmt.Errorf("missing keywords tag")
	}

	category, found := extractTagContent(response, "category")
	if !found {
		return Analysis{}, fmt.Errorf("missing category tag")
	}

	analysis := Analysis{
		Description: description,
		Keywords:    keywords,
		Category:    category,
	}

	return analysis, nil
}

// extractTagContent returns the content between the opening and closing
// instances of the specified xml tag.
func extractTagContent(s string, tag string) (string, bool) {
	opening := fmt.Sprintf("<%s>", tag)
	closing := fmt.Sprintf("</%s>", tag)

	start := strings.Index(s, opening)
	if start == -1 {
		return "", false
	}
	start += len(opening)

	end := strings.Index(s[start:], closing)
	if end == -1 {
		return "", false
	}

	return strings.TrimSpace(s[start : start+end]), true
}
