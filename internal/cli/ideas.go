package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/brainboard/internal/domain"
	"github.com/heartmarshall/brainboard/internal/service/idea"
)

func newIdeasCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ideas",
		Aliases: []string{"idea"},
		Short:   "List, submit and vote on ideas",
	}
	cmd.AddCommand(
		newIdeasListCmd(r),
		newIdeasShowCmd(r),
		newIdeasCreateCmd(r),
		newIdeasVoteCmd(r),
	)
	return cmd
}

func newIdeasListCmd(r *runner) *cobra.Command {
	var (
		query    string
		category string
		sortKey  string
		order    string
	)

	cmd := &cobra.Command{
		Use:   "list <topic-id>",
		Short: "List a topic's ideas",
		Long: `List a topic's ideas, optionally filtered and sorted.

--query matches title, content and tags, ignoring case.
--sort is one of newest, oldest, votes, comments, title, author, category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := r.app.Ideas.ListIdeas(r.session(cmd), idea.ListIdeasInput{
				TopicID:    args[0],
				Query:      query,
				CategoryID: category,
				Sort:       domain.IdeaSortKey(sortKey),
				Order:      domain.SortOrder(order),
			})
			if err != nil {
				return err
			}

			p := r.printer(cmd)
			return p.Emit(mapSlice(rows, toIdeaRowView), func() error {
				table := make([][]string, 0, len(rows))
				for _, row := range rows {
					table = append(table, []string{
						row.Idea.ID,
						row.Idea.Title,
						row.AuthorName,
						row.CategoryName,
						strconv.Itoa(row.Idea.VoteCount()),
						strconv.Itoa(row.CommentCount),
						row.Idea.CreatedAt.Format(time.DateOnly),
					})
				}
				return p.Table([]string{"ID", "TITLE", "AUTHOR", "CATEGORY", "VOTES", "COMMENTS", "CREATED"}, table)
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "search text")
	cmd.Flags().StringVar(&category, "category", "", "only ideas in this category id")
	cmd.Flags().StringVar(&sortKey, "sort", "", "sort key (default from config)")
	cmd.Flags().StringVar(&order, "order", "", "asc or desc (default depends on the sort key)")
	return cmd
}

func newIdeasShowCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "show <idea-id>",
		Short: "Show an idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := r.app.Ideas.GetIdea(r.session(cmd), args[0])
			if err != nil {
				return err
			}
			return printIdea(r.printer(cmd), i)
		},
	}
}

func printIdea(p *printer, i *domain.Idea) error {
	return p.Emit(toIdeaView(*i), func() error {
		return p.Fields([][2]string{
			{"ID", i.ID},
			{"Topic", i.TopicID},
			{"Title", i.Title},
			{"Content", i.Content},
			{"Author", i.AuthorID},
			{"Category", i.CategoryID},
			{"Tags", strings.Join(i.CustomTags, ", ")},
			{"Votes", fmt.Sprintf("%d %v", i.VoteCount(), i.Votes)},
			{"Created", i.CreatedAt.Format(time.RFC3339)},
		})
	})
}

func newIdeasCreateCmd(r *runner) *cobra.Command {
	var (
		title    string
		content  string
		category string
		tags     []string
	)

	cmd := &cobra.Command{
		Use:   "create <topic-id>",
		Short: "Submit an idea to a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := r.app.Ideas.CreateIdea(r.session(cmd), idea.CreateIdeaInput{
				TopicID:    args[0],
				Title:      title,
				Content:    content,
				CategoryID: category,
				CustomTags: tags,
			})
			if err != nil {
				return err
			}
			return printIdea(r.printer(cmd), i)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", fmt.Sprintf("idea title (max %d characters)", idea.MaxTitleLength))
	cmd.Flags().StringVar(&content, "content", "", fmt.Sprintf("idea description (max %d characters)", idea.MaxContentLength))
	cmd.Flags().StringVar(&category, "category", "", "category id within the topic")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tags (comma separated or repeatable)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newIdeasVoteCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "vote <idea-id>",
		Short: "Toggle the current user's vote on an idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := r.app.Ideas.ToggleVote(r.session(cmd), args[0])
			if err != nil {
				return err
			}

			p := r.printer(cmd)
			return p.Emit(struct {
				Voted bool     `json:"voted"`
				Idea  ideaView `json:"idea"`
			}{res.Voted, toIdeaView(*res.Idea)}, func() error {
				verb := "Voted on"
				if !res.Voted {
					verb = "Removed vote from"
				}
				p.Line("%s %q (%d votes)", verb, res.Idea.Title, res.Idea.VoteCount())
				return nil
			})
		},
	}
}
