package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/brainboard/internal/derive"
	"github.com/heartmarshall/brainboard/internal/service/comment"
)

func newCommentsCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comments",
		Aliases: []string{"comment"},
		Short:   "Discuss ideas",
	}
	cmd.AddCommand(
		newCommentsAddCmd(r),
		newCommentsThreadCmd(r),
	)
	return cmd
}

func newCommentsAddCmd(r *runner) *cobra.Command {
	var replyTo string

	cmd := &cobra.Command{
		Use:   "add <idea-id> <text>",
		Short: "Comment on an idea",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := comment.CreateCommentInput{
				IdeaID:  args[0],
				Content: strings.Join(args[1:], " "),
			}
			if cmd.Flags().Changed("reply-to") {
				input.ParentID = &replyTo
			}

			c, err := r.app.Comments.CreateComment(r.session(cmd), input)
			if err != nil {
				return err
			}

			p := r.printer(cmd)
			return p.Emit(toCommentView(*c), func() error {
				p.Line("Comment %s added to idea %s", c.ID, c.IdeaID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&replyTo, "reply-to", "", "id of the comment to reply to")
	return cmd
}

func newCommentsThreadCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "thread <idea-id>",
		Short: "Show an idea's comments as threads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			threads, err := r.app.Comments.Thread(r.session(cmd), args[0])
			if err != nil {
				return err
			}

			p := r.printer(cmd)
			return p.Emit(toThreadViews(threads), func() error {
				if len(threads) == 0 {
					p.Line("No comments yet.")
					return nil
				}
				printThreads(p, threads, 0)
				return nil
			})
		},
	}
}

func printThreads(p *printer, threads []derive.Thread, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, t := range threads {
		c := t.Comment
		p.Line("%s[%s] %s (%s): %s", indent, c.ID, c.AuthorID, c.CreatedAt.Format(time.DateOnly), c.Content)
		printThreads(p, t.Replies, depth+1)
	}
}
