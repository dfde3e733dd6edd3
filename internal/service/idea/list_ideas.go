package idea

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/brainboard/internal/derive"
	"github.com/heartmarshall/brainboard/internal/domain"
)

// Row is an idea as shown in a list, with the names and counts a table
// view displays next to it.
type Row struct {
	Idea         domain.Idea
	AuthorName   string
	CategoryName string
	CommentCount int
}

// ListIdeas returns a topic's ideas filtered by query and category and
// sorted by the requested key. Equal keys keep insertion order.
func (s *Service) ListIdeas(ctx context.Context, input ListIdeasInput) ([]Row, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	topic, err := s.topics.GetByID(ctx, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	ideas, err := s.ideas.ListByTopic(ctx, topic.ID)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}

	ids := make([]string, 0, len(ideas))
	for _, i := range ideas {
		ids = append(ids, i.ID)
	}
	counts, err := s.comments.CountByIdeaIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	authors := make(map[string]string, len(users))
	for _, u := range users {
		authors[u.ID] = u.Name
	}
	categories := make(map[string]string, len(topic.Categories))
	for _, c := range topic.Categories {
		categories[c.ID] = c.Name
	}

	sort := input.Sort
	if sort == "" {
		sort = s.cfg.DefaultSort
	}
	listed := derive.ListIdeas(ideas, derive.ListOptions{
		Query:         strings.TrimSpace(input.Query),
		CategoryID:    strings.TrimSpace(input.CategoryID),
		Sort:          sort,
		Order:         input.Order,
		CommentCounts: counts,
		AuthorNames:   authors,
		CategoryNames: categories,
	})

	rows := make([]Row, 0, len(listed))
	for _, i := range listed {
		rows = append(rows, Row{
			Idea:         i,
			AuthorName:   authors[i.AuthorID],
			CategoryName: categories[i.CategoryID],
			CommentCount: counts[i.ID],
		})
	}
	return rows, nil
}
