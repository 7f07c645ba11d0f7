// path: main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kausheya2006/RaiseUrVoice/config"
	"github.com/Kausheya2006/RaiseUrVoice/logging"
)

var (
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "raiseurvoice",
	Short: "Civic issue reporting service",
	Long: `raiseurvoice collects citizen issue reports with photos, tracks the
honour score of government authorities and charts monthly report statistics.

Run without a subcommand to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.LogFormat)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print monthly filed/solved/pending report counts",
	RunE:  runStats,
}

var seedCmd = &cobra.Command{
	Use:   "seed-authorities",
	Short: "Create authorities listed in a YAML file",
	Long: `Reads a YAML file of the form

  authorities:
    - name: Ward 7 Office
      email: ward7@city.gov.in
      honourScore: 10

and creates each authority. Entries whose email already exists are skipped.`,
	RunE: runSeed,
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash for OPERATOR_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPassword,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "authorities.yaml", "YAML file with authorities to create")

	rootCmd.AddCommand(serveCmd, statsCmd, seedCmd, hashPasswordCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
