package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "show what has been learned from your lookups",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := openSession(ctx)

		newPrinter(os.Stdout).stats(s.manager.Stats(ctx), time.Now())
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
