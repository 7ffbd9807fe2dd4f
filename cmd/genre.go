package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kasuboski/mediarec/pkg/logger"
	"github.com/kasuboski/mediarec/pkg/manager"
	"github.com/kasuboski/mediarec/pkg/media"
)

var genreType string

// genreCmd represents the genre command
var genreCmd = &cobra.Command{
	Use:     "genre <name>",
	Short:   "list popular titles of a genre",
	Args:    cobra.MinimumNArgs(1),
	Example: "mediarec genre --type tv drama",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromCtx(ctx)

		mt, err := media.ParseType(genreType)
		if err != nil {
			log.Fatalw("invalid media type", "error", err)
		}

		s := openSession(ctx)
		out := newPrinter(os.Stdout)

		name := strings.Join(args, " ")
		res, err := s.manager.SearchGenre(ctx, name, mt)
		switch {
		case errors.Is(err, manager.ErrNotFound):
			out.line("No %s found for genre %q.", pluralType(mt), name)
			return
		case err != nil:
			log.Errorw("genre search failed", "genre", name, "error", err)
			return
		}

		out.genre(res)
	},
}

func init() {
	genreCmd.Flags().StringVarP(&genreType, "type", "t", media.Movie.String(), "movie or tv")
	rootCmd.AddCommand(genreCmd)
}
