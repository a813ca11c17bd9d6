package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rajannraj/rtomock/internal/bank"
	"github.com/rajannraj/rtomock/internal/config"
	"github.com/rajannraj/rtomock/internal/prefs"
)

var rootCmd = &cobra.Command{
	Use:          "rtomock",
	Short:        "RTO learner licence mock test",
	Long:         "rtomock runs the timed RTO learner licence mock test in the terminal and issues a certificate when you pass.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a config file (default ./config.yaml)")
	pf.String("db", "", "Path to SQLite preferences database (overrides RTOMOCK_DB env var)")
	pf.String("log-file", "", "Path to the log file (overrides RTOMOCK_LOG_FILE env var)")
	pf.String("bank", "", "Question bank JSON file (default: built-in bank)")
	pf.String("out", "", "Directory certificates are saved to")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration with the command's flags taking priority.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(config.Options{ConfigFile: path, Flags: cmd.Flags()})
}

// loadBank returns the configured question bank, or the built-in one.
func loadBank(cfg *config.Config) (*bank.Bank, error) {
	if cfg.Bank.File != "" {
		return bank.LoadFile(cfg.Bank.File)
	}
	return bank.Embedded()
}

// openPrefs opens the preferences database, creating its directory.
func openPrefs(cfg *config.Config) (*prefs.Store, error) {
	if err := config.EnsureDir(cfg.DB); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	st, err := prefs.Open(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("open preferences: %w", err)
	}
	return st, nil
}
