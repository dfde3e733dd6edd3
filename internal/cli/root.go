// Package cli implements the brainboard command line. Every invocation
// starts from a freshly seeded in-memory store.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/brainboard/internal/app"
	"github.com/heartmarshall/brainboard/internal/config"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// runner carries the global flags and the app built from them.
type runner struct {
	configPath string
	as         string
	output     string

	cfg *config.Config
	app *app.App
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	r := &runner{}

	rootCmd := &cobra.Command{
		Use:   "brainboard",
		Short: "Brainboard - collaborative brainstorming boards",
		Long: `Brainboard manages brainstorming topics: categorized ideas, votes and
threaded comments, with summaries derived from them.

The store lives in memory and is seeded on every run. Use "apply" to run a
sequence of operations against a single store.`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return r.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&r.configPath, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&r.as, "as", "", "act as this user id (empty string for anonymous)")
	rootCmd.PersistentFlags().StringVarP(&r.output, "output", "o", outputText, "output format: text or json")

	rootCmd.AddCommand(
		newTopicsCmd(r),
		newTemplatesCmd(r),
		newIdeasCmd(r),
		newCommentsCmd(r),
		newSummaryCmd(r),
		newActivityCmd(r),
		newUsersCmd(r),
		newWhoamiCmd(r),
		newApplyCmd(r),
		newVersionCmd(),
	)

	return rootCmd
}

func (r *runner) setup(cmd *cobra.Command) error {
	if r.output != outputText && r.output != outputJSON {
		return fmt.Errorf("--output must be %s or %s (got %q)", outputText, outputJSON, r.output)
	}

	cfg, err := config.LoadPath(r.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("as") {
		cfg.Session.CurrentUserID = r.as
	}
	r.cfg = cfg

	logger := app.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log)
	a, err := app.New(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	r.app = a
	return nil
}

// session returns the command context acting as the current user.
func (r *runner) session(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return r.app.Session(ctx)
}

func (r *runner) printer(cmd *cobra.Command) *printer {
	return &printer{w: cmd.OutOrStdout(), json: r.output == outputJSON}
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
