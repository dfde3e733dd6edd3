package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newSummaryCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <topic-id>",
		Short: "Show vote and category statistics for a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := r.app.Board.Summary(r.session(cmd), args[0])
			if err != nil {
				return err
			}

			p := r.printer(cmd)
			return p.Emit(toSummaryView(args[0], s), func() error {
				mostVoted := "-"
				if s.MostVotedCategory != nil {
					mostVoted = s.MostVotedCategory.Name
				}
				if err := p.Fields([][2]string{
					{"Ideas", strconv.Itoa(s.TotalIdeas)},
					{"Votes", strconv.Itoa(s.TotalVotes)},
					{"Voters", fmt.Sprintf("%d of %d users (%d%%)", s.UniqueVoters, s.TotalUsers, s.ParticipationPercent())},
					{"Most voted", mostVoted},
				}); err != nil {
					return err
				}

				p.Line("")
				stats := make([][]string, 0, len(s.Categories))
				for _, c := range s.Categories {
					stats = append(stats, []string{c.Category.Name, strconv.Itoa(c.Ideas), strconv.Itoa(c.Votes)})
				}
				if err := p.Table([]string{"CATEGORY", "IDEAS", "VOTES"}, stats); err != nil {
					return err
				}

				p.Line("")
				top := make([][]string, 0, len(s.TopIdeas))
				for n, i := range s.TopIdeas {
					top = append(top, []string{strconv.Itoa(n + 1), i.Title, strconv.Itoa(i.VoteCount())})
				}
				return p.Table([]string{"#", "TOP IDEA", "VOTES"}, top)
			})
		},
	}
}

func newActivityCmd(r *runner) *cobra.Command {
	var (
		topicID string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent activity, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := r.app.Board.RecentActivity(r.session(cmd), topicID, limit)
			if err != nil {
				return err
			}

			p := r.printer(cmd)
			return p.Emit(mapSlice(records, toActivityView), func() error {
				if len(records) == 0 {
					p.Line("No activity yet.")
					return nil
				}
				rows := make([][]string, 0, len(records))
				for _, rec := range records {
					rows = append(rows, []string{
						rec.CreatedAt.Format(time.DateTime),
						rec.UserID,
						rec.Action.String(),
						rec.Summary,
					})
				}
				return p.Table([]string{"TIME", "USER", "ACTION", "SUMMARY"}, rows)
			})
		},
	}
	cmd.Flags().StringVar(&topicID, "topic", "", "only activity in this topic")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum records (default from config)")
	return cmd
}
