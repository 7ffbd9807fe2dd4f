package cmd

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kasuboski/mediarec/pkg/logger"
	mhttp "github.com/kasuboski/mediarec/pkg/http"
	"github.com/kasuboski/mediarec/pkg/recommend"
	"github.com/kasuboski/mediarec/pkg/storage"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mediarec",
	Short: "mediarec recommends movies and tv shows from what you look up",
	Long: `mediarec learns from the movies and tv shows you look up and recommends
what to watch next. Every lookup is remembered between runs.`,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeSession(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx := logger.WithCtx(context.Background(), logger.Get())
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	rootCmd.PersistentFlags().String("storage", storage.DriverFile, "snapshot backend, one of "+strings.Join(storage.Drivers, ", "))
	rootCmd.PersistentFlags().String("state", "", "snapshot location, a json file, sqlite database or badger directory")

	_ = viper.BindPFlag("storage.driver", rootCmd.PersistentFlags().Lookup("storage"))
	_ = viper.BindPFlag("storage.filePath", rootCmd.PersistentFlags().Lookup("state"))
}

const defaultCacheTTL = time.Hour

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("MEDIAREC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tmdb.scheme", "https")
	viper.SetDefault("tmdb.host", "api.themoviedb.org")
	viper.SetDefault("tmdb.apiKey", "")
	viper.SetDefault("tmdb.maxRetries", mhttp.DefaultMaxRetries)
	viper.SetDefault("tmdb.backoff", mhttp.DefaultBaseBackoff)
	viper.SetDefault("tmdb.requestsPerSecond", 20)
	viper.SetDefault("tmdb.timeout", 10*time.Second)
	viper.SetDefault("tmdb.cacheTTL", defaultCacheTTL)

	viper.SetDefault("storage.driver", storage.DriverFile)
	viper.SetDefault("storage.filePath", "")

	rec := recommend.DefaultConfig()
	viper.SetDefault("recommend.neighbors", rec.Neighbors)
	viper.SetDefault("recommend.similarCount", rec.SimilarCount)
	viper.SetDefault("recommend.resultSize", rec.ResultSize)
	viper.SetDefault("recommend.window", rec.Window)
	viper.SetDefault("recommend.minWatchEvents", rec.MinWatchEvents)
	viper.SetDefault("recommend.minTransactions", rec.MinTransactions)
	viper.SetDefault("recommend.minSupport", rec.MinSupport)
	viper.SetDefault("recommend.minConfidence", rec.MinConfidence)
	viper.SetDefault("recommend.maxRules", rec.MaxRules)

	viper.SetDefault("server.port", 8080)
}
