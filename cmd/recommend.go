package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "recommend from everything looked up so far",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := openSession(ctx)

		newPrinter(os.Stdout).list("Recommended for you", s.manager.Personalized(ctx))
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
}
