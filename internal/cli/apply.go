package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/brainboard/internal/domain"
	"github.com/heartmarshall/brainboard/internal/service/comment"
	"github.com/heartmarshall/brainboard/internal/service/idea"
	"github.com/heartmarshall/brainboard/internal/service/topic"
)

// Script is a sequence of operations run against one store.
//
// Any id field may name an earlier step's result as "$name", where name is
// that step's Name.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one operation. Op selects which of the remaining fields apply.
type Step struct {
	Op   string `yaml:"op"`
	Name string `yaml:"name"`

	// As overrides the acting user for this step. "-" acts anonymously.
	As string `yaml:"as"`

	TopicID     string     `yaml:"topic_id"`
	IdeaID      string     `yaml:"idea_id"`
	ParentID    string     `yaml:"parent_id"`
	TemplateID  string     `yaml:"template_id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Content     string     `yaml:"content"`
	CategoryID  string     `yaml:"category_id"`
	Tags        []string   `yaml:"tags"`
	Categories  []Category `yaml:"categories"`
	AccessCode  string     `yaml:"access_code"`

	// ExpectError marks a step that must fail. The script stops otherwise.
	ExpectError bool `yaml:"expect_error"`
}

// Category is a topic category in a script.
type Category struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

const (
	opCreateTopic = "create-topic"
	opCreateIdea  = "create-idea"
	opVote        = "vote"
	opComment     = "comment"
	opAdvance     = "advance"
	opJoin        = "join"
)

// StepResult reports the outcome of one step.
type StepResult struct {
	Index int    `json:"index"`
	Op    string `json:"op"`
	Name  string `json:"name,omitempty"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// ParseScript decodes a YAML script. Unknown fields are rejected.
func ParseScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for n, step := range s.Steps {
		switch step.Op {
		case opCreateTopic, opCreateIdea, opVote, opComment, opAdvance, opJoin:
		default:
			return nil, fmt.Errorf("parse script: steps[%d]: unknown op %q", n, step.Op)
		}
	}
	return &s, nil
}

func newApplyCmd(r *runner) *cobra.Command {
	var (
		file      string
		summaryOf string
	)

	cmd := &cobra.Command{
		Use:   "apply -f <script.yaml>",
		Short: "Run a YAML script of operations against one store",
		Long: `Run a YAML script of operations against a single seeded store.

Ops: create-topic, create-idea, vote, comment, advance, join. A step with a
name can be referenced by later steps as "$name" in any id field.

  steps:
    - op: create-idea
      name: dark
      topic_id: "1"
      category_id: "4"
      title: Dark mode everywhere
      content: Extend dark mode to emails.
    - op: vote
      as: "2"
      idea_id: $dark`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			script, err := ParseScript(in)
			if err != nil {
				return err
			}

			results, runErr := r.runScript(cmd, script)

			p := r.printer(cmd)
			out := struct {
				Steps   []StepResult `json:"steps"`
				Summary *summaryView `json:"summary,omitempty"`
			}{Steps: results}

			if runErr == nil && summaryOf != "" {
				s, err := r.app.Board.Summary(r.session(cmd), summaryOf)
				if err != nil {
					return err
				}
				v := toSummaryView(summaryOf, s)
				out.Summary = &v
			}

			if err := p.Emit(out, func() error {
				rows := make([][]string, 0, len(results))
				for _, res := range results {
					status := "ok"
					if res.Error != "" {
						status = res.Error
					}
					rows = append(rows, []string{strconv.Itoa(res.Index + 1), res.Op, res.Name, res.ID, status})
				}
				if err := p.Table([]string{"#", "OP", "NAME", "ID", "RESULT"}, rows); err != nil {
					return err
				}
				if s := out.Summary; s != nil {
					p.Line("")
					p.Line("Topic %s: %d ideas, %d votes from %d of %d users",
						s.TopicID, s.TotalIdeas, s.TotalVotes, s.UniqueVoters, s.TotalUsers)
				}
				return nil
			}); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `script file ("-" for stdin)`)
	cmd.Flags().StringVar(&summaryOf, "summary", "", "print the summary of this topic id afterwards")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// runScript executes the steps in order and stops at the first unexpected
// outcome. Results cover every step that ran.
func (r *runner) runScript(cmd *cobra.Command, script *Script) ([]StepResult, error) {
	names := make(map[string]string)
	results := make([]StepResult, 0, len(script.Steps))

	for n, step := range script.Steps {
		ctx := r.session(cmd)
		switch step.As {
		case "":
		case "-":
			ctx = r.app.As(cmd.Context(), "")
		default:
			ctx = r.app.As(cmd.Context(), step.As)
		}

		res := StepResult{Index: n, Op: step.Op, Name: step.Name}
		id, err := r.runStep(ctx, step, names)
		if err != nil {
			res.Error = err.Error()
		} else {
			res.ID = id
			if step.Name != "" {
				names[step.Name] = id
			}
		}
		results = append(results, res)

		switch {
		case err != nil && !step.ExpectError:
			return results, fmt.Errorf("step %d (%s): %w", n+1, step.Op, err)
		case err == nil && step.ExpectError:
			return results, fmt.Errorf("step %d (%s): expected an error", n+1, step.Op)
		}
	}
	return results, nil
}

func (r *runner) runStep(ctx context.Context, step Step, names map[string]string) (string, error) {
	ref := func(v string) (string, error) {
		if !strings.HasPrefix(v, "$") {
			return v, nil
		}
		id, ok := names[v[1:]]
		if !ok {
			return "", fmt.Errorf("unknown reference %q", v)
		}
		return id, nil
	}

	topicID, err := ref(step.TopicID)
	if err != nil {
		return "", err
	}
	ideaID, err := ref(step.IdeaID)
	if err != nil {
		return "", err
	}

	switch step.Op {
	case opCreateTopic:
		var t *domain.Topic
		if step.TemplateID != "" {
			t, err = r.app.Topics.CreateTopicFromTemplate(ctx, topic.CreateFromTemplateInput{
				TemplateID:  step.TemplateID,
				Title:       step.Title,
				Description: optional(step.Description),
				AccessCode:  optional(step.AccessCode),
			})
		} else {
			categories := make([]topic.CategoryInput, 0, len(step.Categories))
			for _, c := range step.Categories {
				categories = append(categories, topic.CategoryInput{ID: c.ID, Name: c.Name, Color: c.Color})
			}
			t, err = r.app.Topics.CreateTopic(ctx, topic.CreateTopicInput{
				Title:       step.Title,
				Description: optional(step.Description),
				Categories:  categories,
				AccessCode:  optional(step.AccessCode),
			})
		}
		if err != nil {
			return "", err
		}
		return t.ID, nil

	case opCreateIdea:
		i, err := r.app.Ideas.CreateIdea(ctx, idea.CreateIdeaInput{
			TopicID:    topicID,
			Title:      step.Title,
			Content:    step.Content,
			CategoryID: step.CategoryID,
			CustomTags: step.Tags,
		})
		if err != nil {
			return "", err
		}
		return i.ID, nil

	case opVote:
		res, err := r.app.Ideas.ToggleVote(ctx, ideaID)
		if err != nil {
			return "", err
		}
		return res.Idea.ID, nil

	case opComment:
		input := comment.CreateCommentInput{IdeaID: ideaID, Content: step.Content}
		if step.ParentID != "" {
			parentID, err := ref(step.ParentID)
			if err != nil {
				return "", err
			}
			input.ParentID = &parentID
		}
		c, err := r.app.Comments.CreateComment(ctx, input)
		if err != nil {
			return "", err
		}
		return c.ID, nil

	case opAdvance:
		t, err := r.app.Topics.AdvanceStage(ctx, topicID, nil)
		if err != nil {
			return "", err
		}
		return t.ID, nil

	case opJoin:
		t, err := r.app.Topics.JoinTopic(ctx, topic.JoinTopicInput{TopicID: topicID, AccessCode: step.AccessCode})
		if err != nil {
			return "", err
		}
		return t.ID, nil
	}

	return "", fmt.Errorf("unknown op %q", step.Op)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
