package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "parinfer",
		Short:        "parinfer",
		SilenceUsage: true,
		Long:         `CLI for the Parinfer structural editor engine: reconciles indentation and parenthesization in S-expression source read from stdin.`,
	}

	configFile string
	logLevel   string
	debug      bool

	logger = logrus.New()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".parinfer.yaml", "path to a YAML file of dialect defaults")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "pretty-print the full answer structure to stderr")

	logger.SetOutput(os.Stderr)

	cobra.OnInitialize(func() {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			level = logrus.WarnLevel
		}
		logger.SetLevel(level)
	})

	return rootCmd.Execute()
}
