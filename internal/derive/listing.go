package derive

import (
	"cmp"
	"slices"
	"strings"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// ListOptions is the transient view state of an idea list.
type ListOptions struct {
	// Query matches title, content or any tag, ignoring case. Empty passes all.
	Query string
	// CategoryID keeps only ideas of that category. Empty passes all.
	CategoryID string
	// Sort defaults to IdeaSortNewest.
	Sort domain.IdeaSortKey
	// Order overrides the key's default direction.
	Order domain.SortOrder

	// CommentCounts feeds IdeaSortComments. When nil the list falls back to
	// newest-first.
	CommentCounts map[string]int
	// AuthorNames and CategoryNames feed the text sorts. Missing entries sort
	// by id.
	AuthorNames   map[string]string
	CategoryNames map[string]string
}

// MatchesQuery reports whether the idea's title, content or one of its tags
// contains query, ignoring case.
func MatchesQuery(i *domain.Idea, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	if domain.ContainsFold(i.Title, query) || domain.ContainsFold(i.Content, query) {
		return true
	}
	return slices.ContainsFunc(i.CustomTags, func(tag string) bool {
		return domain.ContainsFold(tag, query)
	})
}

// ListIdeas filters ideas by query and category, then sorts them. The sort
// is stable: ideas with equal keys keep their input order. The result is a
// new slice.
func ListIdeas(ideas []domain.Idea, opts ListOptions) []domain.Idea {
	out := make([]domain.Idea, 0, len(ideas))
	for _, i := range ideas {
		if opts.CategoryID != "" && i.CategoryID != opts.CategoryID {
			continue
		}
		if !MatchesQuery(&i, opts.Query) {
			continue
		}
		out = append(out, i)
	}

	key := opts.Sort
	if !key.IsValid() {
		key = domain.IdeaSortNewest
	}
	order := opts.Order
	if key == domain.IdeaSortComments && opts.CommentCounts == nil {
		key = domain.IdeaSortNewest
		order = ""
	}
	if !order.IsValid() {
		order = key.DefaultOrder()
	}

	compare := comparator(key, opts)
	if order == domain.SortOrderDesc {
		asc := compare
		compare = func(a, b domain.Idea) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, compare)
	return out
}

// comparator returns the ascending comparison for key.
func comparator(key domain.IdeaSortKey, opts ListOptions) func(a, b domain.Idea) int {
	switch key {
	case domain.IdeaSortVotes:
		return func(a, b domain.Idea) int { return cmp.Compare(a.VoteCount(), b.VoteCount()) }
	case domain.IdeaSortComments:
		return func(a, b domain.Idea) int {
			return cmp.Compare(opts.CommentCounts[a.ID], opts.CommentCounts[b.ID])
		}
	case domain.IdeaSortTitle:
		return func(a, b domain.Idea) int { return compareText(a.Title, b.Title) }
	case domain.IdeaSortAuthor:
		return func(a, b domain.Idea) int {
			return compareText(lookup(opts.AuthorNames, a.AuthorID), lookup(opts.AuthorNames, b.AuthorID))
		}
	case domain.IdeaSortCategory:
		return func(a, b domain.Idea) int {
			return compareText(lookup(opts.CategoryNames, a.CategoryID), lookup(opts.CategoryNames, b.CategoryID))
		}
	default: // newest, oldest
		return func(a, b domain.Idea) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
}

func compareText(a, b string) int {
	return strings.Compare(domain.FoldText(a), domain.FoldText(b))
}

func lookup(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}
