package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rajannraj/rtomock/internal/app"
	"github.com/rajannraj/rtomock/internal/logging"
	"github.com/rajannraj/rtomock/internal/prefs"
	"github.com/rajannraj/rtomock/internal/ui/uictx"
)

var runCmd = &cobra.Command{
	Use:     "run",
	Aliases: []string{"play"},
	Short:   "Start a mock test",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp loads configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	b, err := loadBank(cfg)
	if err != nil {
		return err
	}

	// Preferences are not essential: without a database the app runs with
	// defaults and keeps changes in memory.
	p := prefs.Defaults()
	var saver uictx.Saver
	st, err := openPrefs(cfg)
	if err != nil {
		log.Warn("preferences unavailable, using defaults", zap.Error(err))
	} else {
		defer st.Close()
		saver = st
		if loaded, err := st.Load(ctx); err != nil {
			log.Warn("failed to load preferences", zap.Error(err))
		} else {
			p = loaded
		}
	}

	log.Info("starting rtomock",
		zap.String("version", version),
		zap.String("bank_version", b.Version()),
		zap.Int("questions", cfg.Exam.QuestionCount),
		zap.Duration("duration", cfg.Exam.Duration),
	)

	return app.Run(app.Options{
		Context:   uictx.New(p, saver, log),
		Bank:      b,
		Exam:      cfg.ExamConfig(),
		Branding:  cfg.Branding(),
		OutputDir: cfg.Certificate.OutputDir,
		Logger:    log,
	})
}
