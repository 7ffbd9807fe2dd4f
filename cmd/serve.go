package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kasuboski/mediarec/pkg/logger"
	"github.com/kasuboski/mediarec/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the recommendation api server",
	Long:  `start the recommendation api server. The snapshot is saved after every lookup and on shutdown.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromCtx(ctx)
		s := openSession(ctx)

		srv := server.New(log, s.manager)
		if err := srv.Serve(s.cfg.Server.Port); err != nil {
			log.Errorw("server stopped", "error", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
