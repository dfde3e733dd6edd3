package derive

import (
	"cmp"
	"math"
	"slices"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// DefaultTopIdeas is the size of the top-ideas list when none is requested.
const DefaultTopIdeas = 5

// CategoryStat aggregates the ideas of one category.
type CategoryStat struct {
	Category domain.IdeaCategory
	Ideas    int
	Votes    int
}

// Summary is the aggregate view of a board.
type Summary struct {
	// Categories follows the topic's category order.
	Categories []CategoryStat
	// TopIdeas is ranked by vote count, ties in input order.
	TopIdeas     []domain.Idea
	TotalIdeas   int
	TotalVotes   int
	UniqueVoters int
	TotalUsers   int
	// ParticipationRate is UniqueVoters / TotalUsers, or 0 without users.
	ParticipationRate float64
	// MostVotedCategory is the first category with the highest vote total.
	// nil when the topic has no categories.
	MostVotedCategory *domain.IdeaCategory
}

// ParticipationPercent returns the participation rate as a rounded percentage.
func (s Summary) ParticipationPercent() int {
	return int(math.Round(s.ParticipationRate * 100))
}

// Summarize aggregates ideas over the topic's categories and the known users.
// topN <= 0 selects DefaultTopIdeas. Ideas in a category outside categories
// count toward the totals only.
func Summarize(ideas []domain.Idea, categories []domain.IdeaCategory, users []domain.User, topN int) Summary {
	if topN <= 0 {
		topN = DefaultTopIdeas
	}

	s := Summary{
		Categories: make([]CategoryStat, len(categories)),
		TotalIdeas: len(ideas),
		TotalUsers: len(users),
	}
	index := make(map[string]int, len(categories))
	for n, c := range categories {
		s.Categories[n] = CategoryStat{Category: c}
		if _, dup := index[c.ID]; !dup {
			index[c.ID] = n
		}
	}

	voters := make(map[string]struct{})
	for _, i := range ideas {
		s.TotalVotes += i.VoteCount()
		for _, v := range i.Votes {
			voters[v] = struct{}{}
		}
		if n, ok := index[i.CategoryID]; ok {
			s.Categories[n].Ideas++
			s.Categories[n].Votes += i.VoteCount()
		}
	}
	s.UniqueVoters = len(voters)
	if s.TotalUsers > 0 {
		s.ParticipationRate = float64(s.UniqueVoters) / float64(s.TotalUsers)
	}

	best := -1
	for n, stat := range s.Categories {
		if best < 0 || stat.Votes > s.Categories[best].Votes {
			best = n
		}
	}
	if best >= 0 {
		c := s.Categories[best].Category
		s.MostVotedCategory = &c
	}

	ranked := slices.Clone(ideas)
	slices.SortStableFunc(ranked, func(a, b domain.Idea) int {
		return cmp.Compare(b.VoteCount(), a.VoteCount())
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	s.TopIdeas = ranked
	return s
}
