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

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "look up a title and get recommendations",
	Long: `look up a movie or tv show by title. The title is remembered and
recommendations similar to it are printed.`,
}

func newLookupCmd(mt media.Type) *cobra.Command {
	return &cobra.Command{
		Use:     mt.String() + " <title>",
		Short:   "look up a " + typeLabel(mt),
		Args:    cobra.MinimumNArgs(1),
		Example: "mediarec lookup " + mt.String() + " \"the matrix\"",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			log := logger.FromCtx(ctx)
			s := openSession(ctx)
			out := newPrinter(os.Stdout)

			query := strings.Join(args, " ")
			res, err := s.manager.Lookup(ctx, mt, query)
			switch {
			case errors.Is(err, manager.ErrNotFound):
				out.line("Nothing found for %q.", query)
				out.list("Popular "+pluralType(mt)+" instead", s.manager.Popular(ctx, mt, s.cfg.Recommend.ResultSize))
				return
			case err != nil:
				log.Errorw("lookup failed", "query", query, "error", err)
				return
			}

			out.record(res.Record, res.Repeat)
			out.list("Recommended", res.Recommendations)
		},
	}
}

func init() {
	for _, mt := range media.Types {
		lookupCmd.AddCommand(newLookupCmd(mt))
	}
	rootCmd.AddCommand(lookupCmd)
}
