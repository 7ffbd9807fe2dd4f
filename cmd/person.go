package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kasuboski/mediarec/pkg/logger"
	"github.com/kasuboski/mediarec/pkg/manager"
)

var personRole string

// personCmd represents the person command
var personCmd = &cobra.Command{
	Use:     "person <name>",
	Short:   "list the most popular movies of an actor or director",
	Args:    cobra.MinimumNArgs(1),
	Example: "mediarec person --role director \"michael mann\"",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromCtx(ctx)

		role, err := manager.ParseRole(personRole)
		if err != nil {
			log.Fatalw("invalid role", "error", err)
		}

		s := openSession(ctx)
		out := newPrinter(os.Stdout)

		query := strings.Join(args, " ")
		res, err := s.manager.SearchPeople(ctx, query, role)
		switch {
		case errors.Is(err, manager.ErrNotFound):
			out.line("No %s found for %q.", role, query)
			return
		case err != nil:
			log.Errorw("person search failed", "query", query, "error", err)
			return
		}

		out.people(res)
	},
}

func init() {
	personCmd.Flags().StringVarP(&personRole, "role", "r", string(manager.RoleActor), "actor or director")
	rootCmd.AddCommand(personCmd)
}
