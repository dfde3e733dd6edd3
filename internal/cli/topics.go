package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/brainboard/internal/domain"
	"github.com/heartmarshall/brainboard/internal/service/topic"
)

const defaultCategoryColor = "#4F46E5"

func newTopicsCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "topics",
		Aliases: []string{"topic"},
		Short:   "List, inspect and manage topics",
	}
	cmd.AddCommand(
		newTopicsListCmd(r),
		newTopicsShowCmd(r),
		newTopicsCreateCmd(r),
		newTopicsUpdateCmd(r),
		newTopicsAdvanceCmd(r),
		newTopicsJoinCmd(r),
	)
	return cmd
}

func newTopicsListCmd(r *runner) *cobra.Command {
	var mine bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List topics, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := r.session(cmd)

			var (
				topics []domain.Topic
				err    error
			)
			if mine {
				topics, err = r.app.Users.MyTopics(ctx)
			} else {
				topics, err = r.app.Topics.ListTopics(ctx)
			}
			if err != nil {
				return err
			}

			p := r.printer(cmd)
			return p.Emit(mapSlice(topics, toTopicView), func() error {
				rows := make([][]string, 0, len(topics))
				for _, t := range topics {
					rows = append(rows, []string{
						t.ID,
						t.Title,
						t.Workflow.CurrentStage.Label(),
						strconv.Itoa(len(t.Participants)),
						t.CreatedAt.Format(time.DateOnly),
					})
				}
				return p.Table([]string{"ID", "TITLE", "STAGE", "MEMBERS", "CREATED"}, rows)
			})
		},
	}
	cmd.Flags().BoolVar(&mine, "mine", false, "only topics the current user participates in")
	return cmd
}

func newTopicsShowCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "show <topic-id>",
		Short: "Show a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := r.app.Topics.GetTopic(r.session(cmd), args[0])
			if err != nil {
				return err
			}
			return printTopic(r.printer(cmd), t)
		},
	}
}

func printTopic(p *printer, t *domain.Topic) error {
	return p.Emit(toTopicView(*t), func() error {
		categories := make([]string, 0, len(t.Categories))
		for _, c := range t.Categories {
			categories = append(categories, fmt.Sprintf("%s (%s)", c.Name, c.ID))
		}
		members := make([]string, 0, len(t.Participants))
		for _, m := range t.Participants {
			members = append(members, fmt.Sprintf("%s:%s", m.UserID, m.Role))
		}
		stage := t.Workflow.CurrentStage.Label()
		if end := t.Workflow.StageEndDate; end != nil {
			stage += " (ends " + end.Format(time.DateOnly) + ")"
		}
		return p.Fields([][2]string{
			{"ID", t.ID},
			{"Title", t.Title},
			{"Description", t.Description},
			{"Owner", t.OwnerID},
			{"Stage", stage},
			{"Categories", strings.Join(categories, ", ")},
			{"Members", strings.Join(members, ", ")},
			{"Created", t.CreatedAt.Format(time.RFC3339)},
		})
	})
}

func newTopicsCreateCmd(r *runner) *cobra.Command {
	var (
		title       string
		description string
		categories  []string
		accessCode  string
		templateID  string
		scheduled   string
		invites     []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a topic",
		Long: `Create a topic owned by the current user.

Categories are given as NAME or NAME=COLOR, for example
--category Feature=#4CAF50 --category Bug. With --template the categories and
layout come from the template and the topic opens in the submission stage.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := r.session(cmd)
			flags := cmd.Flags()

			var desc, code *string
			if flags.Changed("description") {
				desc = &description
			}
			if flags.Changed("access-code") {
				code = &accessCode
			}
			date, err := parseDate(scheduled)
			if err != nil {
				return err
			}

			var t *domain.Topic
			if templateID != "" {
				t, err = r.app.Topics.CreateTopicFromTemplate(ctx, topic.CreateFromTemplateInput{
					TemplateID:    templateID,
					Title:         title,
					Description:   desc,
					AccessCode:    code,
					ScheduledDate: date,
					InvitedEmails: invites,
				})
			} else {
				t, err = r.app.Topics.CreateTopic(ctx, topic.CreateTopicInput{
					Title:         title,
					Description:   desc,
					Categories:    parseCategories(categories),
					AccessCode:    code,
					ScheduledDate: date,
					InvitedEmails: invites,
				})
			}
			if err != nil {
				return err
			}
			return printTopic(r.printer(cmd), t)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "topic title")
	cmd.Flags().StringVar(&description, "description", "", "topic description")
	cmd.Flags().StringArrayVar(&categories, "category", nil, "category as NAME or NAME=COLOR (repeatable)")
	cmd.Flags().StringVar(&accessCode, "access-code", "", "code participants need to join")
	cmd.Flags().StringVar(&templateID, "template", "", "create from a board template (see 'templates')")
	cmd.Flags().StringVar(&scheduled, "scheduled", "", "scheduled date, YYYY-MM-DD or RFC 3339")
	cmd.Flags().StringSliceVar(&invites, "invite", nil, "emails to invite (comma separated or repeatable)")
	_ = cmd.MarkFlagRequired("title")
	cmd.MarkFlagsMutuallyExclusive("template", "category")
	return cmd
}

func newTopicsUpdateCmd(r *runner) *cobra.Command {
	var (
		title       string
		description string
		accessCode  string
		scheduled   string
		layout      string
	)

	cmd := &cobra.Command{
		Use:   "update <topic-id>",
		Short: "Update a topic's details; an empty value clears optional fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			input := topic.UpdateTopicInput{TopicID: args[0]}
			if flags.Changed("title") {
				input.Title = &title
			}
			if flags.Changed("description") {
				input.Description = &description
			}
			if flags.Changed("access-code") {
				input.AccessCode = &accessCode
			}
			if flags.Changed("layout") {
				input.Layout = &layout
			}
			if flags.Changed("scheduled") {
				date, err := parseDate(scheduled)
				if err != nil {
					return err
				}
				input.ScheduledDate = date
			}

			t, err := r.app.Topics.UpdateTopic(r.session(cmd), input)
			if err != nil {
				return err
			}
			return printTopic(r.printer(cmd), t)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&accessCode, "access-code", "", "new access code")
	cmd.Flags().StringVar(&scheduled, "scheduled", "", "new scheduled date, YYYY-MM-DD or RFC 3339")
	cmd.Flags().StringVar(&layout, "layout", "", "new layout")
	return cmd
}

func newTopicsAdvanceCmd(r *runner) *cobra.Command {
	var until string

	cmd := &cobra.Command{
		Use:   "advance <topic-id>",
		Short: "Move a topic to its next workflow stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			end, err := parseDate(until)
			if err != nil {
				return err
			}
			t, err := r.app.Topics.AdvanceStage(r.session(cmd), args[0], end)
			if err != nil {
				return err
			}
			return printTopic(r.printer(cmd), t)
		},
	}
	cmd.Flags().StringVar(&until, "until", "", "deadline for the new stage, YYYY-MM-DD or RFC 3339")
	return cmd
}

func newTopicsJoinCmd(r *runner) *cobra.Command {
	var accessCode string

	cmd := &cobra.Command{
		Use:   "join <topic-id>",
		Short: "Join a topic as a participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := r.app.Topics.JoinTopic(r.session(cmd), topic.JoinTopicInput{
				TopicID:    args[0],
				AccessCode: accessCode,
			})
			if err != nil {
				return err
			}
			return printTopic(r.printer(cmd), t)
		},
	}
	cmd.Flags().StringVar(&accessCode, "access-code", "", "the topic's access code")
	return cmd
}

func newTemplatesCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List board templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := r.app.Topics.ListTemplates()

			p := r.printer(cmd)
			return p.Emit(mapSlice(templates, toTemplateView), func() error {
				rows := make([][]string, 0, len(templates))
				for _, t := range templates {
					names := make([]string, 0, len(t.Categories))
					for _, c := range t.Categories {
						names = append(names, c.Name)
					}
					rows = append(rows, []string{t.ID, t.Name, strings.Join(names, ", ")})
				}
				return p.Table([]string{"ID", "NAME", "CATEGORIES"}, rows)
			})
		},
	}
}

// parseCategories turns NAME or NAME=COLOR values into category inputs.
func parseCategories(values []string) []topic.CategoryInput {
	out := make([]topic.CategoryInput, 0, len(values))
	for _, v := range values {
		name, color, ok := strings.Cut(v, "=")
		if !ok || strings.TrimSpace(color) == "" {
			color = defaultCategoryColor
		}
		out = append(out, topic.CategoryInput{Name: strings.TrimSpace(name), Color: strings.TrimSpace(color)})
	}
	return out
}

// parseDate accepts YYYY-MM-DD or RFC 3339. Empty input yields nil.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC 3339", s)
}
