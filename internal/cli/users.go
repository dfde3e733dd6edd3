package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/brainboard/internal/domain"
)

func newUsersCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Board members",
	}

	var query string
	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := r.app.Users.ListUsers(r.session(cmd), query)
			if err != nil {
				return err
			}

			p := r.printer(cmd)
			return p.Emit(mapSlice(users, toUserView), func() error {
				rows := make([][]string, 0, len(users))
				for _, u := range users {
					rows = append(rows, []string{u.ID, u.Name, u.Initials(), u.Email, onlineLabel(u)})
				}
				return p.Table([]string{"ID", "NAME", "INITIALS", "EMAIL", "STATUS"}, rows)
			})
		},
	}
	list.Flags().StringVarP(&query, "query", "q", "", "filter by name or email")

	cmd.AddCommand(list)
	return cmd
}

func newWhoamiCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := r.app.Users.CurrentUser(r.session(cmd))
			if err != nil {
				return err
			}

			p := r.printer(cmd)
			return p.Emit(toUserView(*u), func() error {
				p.Line("%s (%s) <%s>", u.Name, u.ID, u.Email)
				return nil
			})
		},
	}
}

func onlineLabel(u domain.User) string {
	if u.IsOnline {
		return "online"
	}
	return "offline"
}
