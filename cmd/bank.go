package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rajannraj/rtomock/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the question bank",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a question bank file (default: the configured bank)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			b   *bank.Bank
			err error
		)
		if len(args) == 1 {
			b, err = bank.LoadFile(args[0])
		} else {
			cfg, cerr := loadConfig(cmd)
			if cerr != nil {
				return cerr
			}
			b, err = loadBank(cfg)
		}
		if err != nil {
			return err
		}

		total := 0
		for _, d := range bank.AllDifficulties() {
			total += b.PoolSize(d)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: bank version %s, %d questions\n", b.Version(), total)
		return nil
	},
}

var bankStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show question counts per difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		b, err := loadBank(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-12s  %9s  %9s  %s\n", "Difficulty", "Questions", "Signs", "Full test")
		fmt.Fprintln(out, strings.Repeat("─", 46))

		for _, d := range bank.AllDifficulties() {
			pool := b.Pool(d)
			signs := 0
			for _, q := range pool {
				if _, ok := q.Sign(); ok {
					signs++
				}
			}
			full := "yes"
			if len(pool) < cfg.Exam.QuestionCount {
				full = fmt.Sprintf("no (%d short)", cfg.Exam.QuestionCount-len(pool))
			}
			fmt.Fprintf(out, "%-12s  %9d  %9d  %s\n", d.DisplayName(), len(pool), signs, full)
		}

		fmt.Fprintf(out, "\nbank version %s\n", b.Version())
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankStatsCmd)
}
