package triplo

import (
	"fmt"
	"os"

	"github.com/soundprediction/triplo"
	"github.com/soundprediction/triplo/pkg/config"
	"github.com/soundprediction/triplo/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "triplo",
		Short: "Triplo: Knowledge Graph Query System",
		Long: `Triplo is an in-memory knowledge graph of (subject, relation, object)
facts. Fact files are bulk-loaded from a directory at startup; the graph
is then queried forward (subject+relation -> objects) or reverse
(object+relation -> subjects) via flags, an interactive JSON query loop,
or an HTTP server.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig()
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.triplo.yaml)")
	rootCmd.PersistentFlags().String("sku-dir", "./SKUs", "directory of fact files (.sku, .yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	// Bind flags to viper
	viper.BindPFlag("facts.dir", rootCmd.PersistentFlags().Lookup("sku-dir"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".triplo" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".triplo")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newClient loads configuration, builds the logger, and returns a
// client with the fact directory already loaded.
func newClient() (*triplo.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	client := triplo.NewClient(nil, log)
	client.LoadDirectory(cfg.Facts.Dir)

	return client, cfg, nil
}
