package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error while running %s application: %v\n", appTitle, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevel     string
		capabilities []string
		strictSetup  bool
	)

	cmd := &cobra.Command{
		Use:           "ohmybox",
		Short:         "OhMyBox desktop shell",
		Version:       AppVersion,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := LoadConfig()
			applyFlags(cmd, cfg, logLevel, capabilities)
			return run(cfg, strictSetup)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: error, warn, info or debug")
	cmd.Flags().StringSliceVar(&capabilities, "capabilities", nil, "capabilities to enable: os, tray, notify")
	cmd.Flags().BoolVar(&strictSetup, "strict-setup", false, "exit if the theme relay cannot be set up")
	return cmd
}

// applyFlags overrides persisted config with flags the user actually passed.
func applyFlags(cmd *cobra.Command, cfg *AppConfig, logLevel string, capabilities []string) {
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("capabilities") {
		cfg.Capabilities = capabilities
	}
}

func run(cfg *AppConfig, strictSetup bool) error {
	logFile, err := InitLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logFile.Close()
	Log.Info("starting", "version", AppVersion, "channel", AppChannel(), "capabilities", cfg.Capabilities)

	release := ensureSingleInstance()
	defer release()

	caps, err := resolveCapabilities(cfg.Capabilities, cfg)
	if err != nil {
		Log.Error("resolve capabilities failed", "error", err)
		return fmt.Errorf("capabilities: %w", err)
	}

	var journal *ThemeJournal
	if cfg.IsJournalThemes() {
		journal, err = OpenThemeJournal(DataPath("ohmybox.db"))
		if err != nil {
			Log.Error("open theme journal failed, history disabled", "error", err)
			journal = nil
		}
	}

	app := NewDesktopApp(cfg, caps, newThemeWatcher(), journal)
	app.onSetupError = setupErrorPolicy(strictSetup, func(err error) {
		fmt.Fprintf(os.Stderr, "error while running %s application: %v\n", appTitle, err)
		release()
		os.Exit(1)
	})

	if err := wails.Run(buildAppOptions(app)); err != nil {
		Log.Error("wails runtime failed", "error", err)
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// setupErrorPolicy decides what a failed setup does to the process. The
// default logs and keeps the window up without a theme relay; strict mode
// hands the error to fail, which is expected not to return.
func setupErrorPolicy(strict bool, fail func(error)) func(error) {
	if !strict {
		return func(err error) {
			Log.Error("setup failed, continuing without theme relay", "error", err)
		}
	}
	return func(err error) {
		Log.Error("setup failed", "error", err)
		fail(err)
	}
}
