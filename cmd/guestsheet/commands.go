package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/guestsheet/internal/config"
	"github.com/muurk/guestsheet/internal/logging"
	"github.com/muurk/guestsheet/internal/sheet"
	"github.com/muurk/guestsheet/internal/tui"
	"github.com/muurk/guestsheet/internal/ui"
	"github.com/muurk/guestsheet/internal/urls"
)

// Root command flags
var (
	configPath  string
	logLevel    string
	logFile     string
	sheetTitle  string
	printView   bool
	noAltScreen bool
	forceInit   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Preferences file (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, warning, error); empty disables logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default: guestsheet.log in the config dir)")

	rootCmd.Flags().StringVar(&sheetTitle, "title", "", "Sheet heading (overrides preferences)")
	rootCmd.Flags().BoolVar(&printView, "print", false, "Print the guest view to stdout after quitting from it")
	rootCmd.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "Draw inline instead of in the alternate screen")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing preferences file")
}

func runSheet(cmd *cobra.Command, args []string) error {
	prefs, err := loadPreferences(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if err := setupLogging(prefs); err != nil {
		return err
	}
	defer logging.Sync()

	opts := resolveOptions(prefs, ui.IsTerminal())
	s := sheet.New()

	if err := tui.Run(cmd.Context(), s, opts); err != nil {
		return fmt.Errorf("sheet error: %w", err)
	}
	logging.Info("Sheet closed", zap.String("summary", s.Summary()))

	if printView {
		return printGuestView(cmd.OutOrStdout(), s, opts.Title)
	}
	return nil
}

// loadPreferences reads the preferences file. Invalid settings are reported
// on w and replaced by defaults; a file that cannot be read is an error.
func loadPreferences(w io.Writer) (*config.Preferences, error) {
	prefs, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	if errs := prefs.Validate(); len(errs) > 0 {
		msgs := make([]string, 0, len(errs)+1)
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		msgs = append(msgs, "using default preferences")
		ui.NewPrinter(w).PrintResult(ui.NewWarningResult("Invalid preferences", msgs...))
		return config.NewPreferences(), nil
	}

	return prefs, nil
}

// setupLogging starts file logging when a level is set by flag, preferences
// or environment. Logs default to the config dir so they never draw over the TUI.
func setupLogging(prefs *config.Preferences) error {
	level := firstNonEmpty(logLevel, prefs.LogLevel, os.Getenv(logging.LogLevelEnvVar))
	if level == "" {
		return logging.Initialize("", "")
	}

	output := firstNonEmpty(logFile, os.Getenv(logging.LogFileEnvVar))
	if output == "" {
		if err := config.EnsureConfigDir(); err != nil {
			return err
		}
		path, err := config.GetLogPath()
		if err != nil {
			return fmt.Errorf("failed to get log path: %w", err)
		}
		output = path
	}

	if err := logging.Initialize(level, output); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

// resolveOptions merges preferences and flags into TUI options. The UI
// draws on stderr when stdout carries the --print output or is redirected.
func resolveOptions(prefs *config.Preferences, stdoutTTY bool) tui.Options {
	opts := tui.Options{
		Title:     firstNonEmpty(sheetTitle, prefs.Title),
		MaskChar:  prefs.MaskRune(),
		NoteRows:  prefs.NoteRows,
		AltScreen: prefs.AltScreen && !noAltScreen,
	}
	if printView || !stdoutTTY {
		opts.Output = os.Stderr
	}
	return opts
}

// printGuestView writes the plain-text guest view. A sheet still in edit
// mode was never shown to guests, so it prints nothing.
func printGuestView(w io.Writer, s *sheet.Sheet, title string) error {
	if s.Editing() {
		logging.Debug("Skipping --print, sheet closed in edit mode")
		return nil
	}
	ui.NewPrinter(w).PrintSheet(title, sheet.FormatGuestView(s, ""))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// configCmd groups the preferences subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage display preferences",
	Long: `Manage the guestsheet preferences file.

Preferences hold display settings only: the sheet heading, the password
mask character, the note text area height, alternate screen use and the
log level. Sheet contents are never saved.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default preferences file",
	Example: `  # Write defaults to the user config dir
  guestsheet config init

  # Overwrite an existing file
  guestsheet config init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := ui.NewPrinter(cmd.OutOrStdout())

		path, err := config.CreateDefaultConfig(configPath, forceInit)
		if err != nil {
			p.PrintResult(ui.NewFailureResult("Could not write preferences", err,
				"use --force to overwrite an existing file",
				"report problems at "+urls.Issues,
			))
			return err
		}

		p.PrintResult(ui.NewSuccessResult("Preferences written",
			ui.Detail{Key: "Path", Value: path},
		))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved preferences as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}

		data, err := prefs.Marshal()
		if err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).Print(string(data))

		if errs := prefs.Validate(); len(errs) > 0 {
			msgs := make([]string, 0, len(errs))
			for _, e := range errs {
				msgs = append(msgs, e.Error())
			}
			ui.NewPrinter(cmd.ErrOrStderr()).PrintResult(ui.NewWarningResult("Invalid preferences", msgs...))
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the preferences file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			path, err = config.GetConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
		}
		ui.NewPrinter(cmd.OutOrStdout()).Println(path)
		return nil
	},
}
