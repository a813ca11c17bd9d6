package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rajannraj/rtomock/internal/logging"
	"github.com/rajannraj/rtomock/internal/prefs"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change theme and language",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openPrefs(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := st.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load preferences: %w", err)
		}
		printPrefs(cmd.OutOrStdout(), p)
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference (theme: dark|light, language: en|hi)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := logging.NewConsole(cfg)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		st, err := openPrefs(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := st.Set(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		log.Debug("preference updated", zap.String("key", args[0]), zap.String("value", args[1]))
		printPrefs(cmd.OutOrStdout(), p)
		return nil
	},
}

func printPrefs(w io.Writer, p prefs.Preferences) {
	fmt.Fprintf(w, "%-10s %s\n", prefs.KeyTheme+":", p.Theme)
	fmt.Fprintf(w, "%-10s %s\n", prefs.KeyLanguage+":", p.Language)
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
}
