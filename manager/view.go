package manager

import (
	"cmp"
	"slices"
	"strings"

	"github.com/zhubert/snipdeck-core/snippet"
)

// matchesFilter reports whether a snippet matches a case-insensitive
// substring search over title and content.
func matchesFilter(s snippet.Snippet, filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(s.Title), needle) ||
		strings.Contains(strings.ToLower(s.Content), needle)
}

// buildView applies filter, blank policy, and sort to a snapshot of the
// working set. The input slice is not modified.
func buildView(snippets []snippet.Snippet, filter string, opts Options, mode SortMode, dir SortDirection) []snippet.Snippet {
	view := make([]snippet.Snippet, 0, len(snippets))
	for _, s := range snippets {
		if opts.HideBlank && s.IsBlank() {
			continue
		}
		if !matchesFilter(s, filter) {
			continue
		}
		view = append(view, s)
	}
	sortView(view, mode, dir, opts.DirectionAppliesToCustom)
	return view
}

// sortView orders a view in place. The sort is stable so snippets that
// compare equal keep their manual arrangement relative to each other.
func sortView(view []snippet.Snippet, mode SortMode, dir SortDirection, dirAppliesToCustom bool) {
	var compare func(a, b snippet.Snippet) int
	switch mode {
	case SortTitle:
		compare = func(a, b snippet.Snippet) int { return compareFold(a.Title, b.Title) }
	case SortCreated:
		compare = func(a, b snippet.Snippet) int { return a.CreatedAt.Compare(b.CreatedAt) }
	default:
		compare = func(a, b snippet.Snippet) int { return cmp.Compare(a.Order, b.Order) }
	}

	reversed := dir == SortDescending && (mode != SortCustom || dirAppliesToCustom)
	if reversed {
		forward := compare
		compare = func(a, b snippet.Snippet) int { return forward(b, a) }
	}

	slices.SortStableFunc(view, compare)
}

// compareFold compares two strings case-insensitively.
func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
