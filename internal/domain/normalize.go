package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeText prepares text for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into a single space
//
// Case is preserved; use FoldText for comparisons.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// FoldText case-folds text for case-insensitive matching.
func FoldText(text string) string {
	return cases.Fold().String(text)
}

// ContainsFold reports whether substr occurs in s, ignoring case.
// An empty substr matches everything.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(FoldText(s), FoldText(substr))
}

// NormalizeTags trims every tag, drops empty ones, and removes duplicates
// while keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = NormalizeText(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
