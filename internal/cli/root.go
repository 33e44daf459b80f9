package cli

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/growwithdv/Modern-Calculator/internal/config"
	"github.com/growwithdv/Modern-Calculator/internal/logger"
	"github.com/growwithdv/Modern-Calculator/internal/symbol"
	"github.com/growwithdv/Modern-Calculator/internal/ui"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	ascii     bool
	themeName string
)

// globalConfig is the effective configuration after file, environment and
// flag resolution, set in PersistentPreRunE.
var globalConfig *config.Config

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modcalc",
		Short: "Interactive Terminal Calculator",
		Long: `modcalc is an interactive terminal calculator with chained operations,
a recallable calculation history, and color themes.

Run it without arguments for the full-screen calculator, or use the eval
subcommand to evaluate expressions from arguments or stdin.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-switch to ASCII symbols on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("ascii").Changed {
				ascii = true
			}
			return setupGlobalConfig(cmd)
		},
		RunE: runCalculator,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&ascii, "ascii", false, "ASCII symbols only (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&themeName, "theme", "t", "", "color theme (default, high-contrast, minimal)")

	// Add subcommands
	rootCmd.AddCommand(newEvalCommand())
	rootCmd.AddCommand(newThemesCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// setupGlobalConfig resolves the effective configuration. Flags outrank file
// and environment settings.
func setupGlobalConfig(cmd *cobra.Command) error {
	loader := config.NewLoader()
	cfg, err := loader.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flag("theme").Changed {
		cfg.Theme.Name = themeName
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if cmd.Flag("ascii").Changed || ascii {
		cfg.Display.ASCII = ascii
	}
	if cmd.Flag("verbose").Changed {
		cfg.Output.Verbose = verbose
	}
	if noColor {
		cfg.Output.ColorMode = "never"
		// Styling throughout keys off NO_COLOR.
		_ = os.Setenv("NO_COLOR", "1")
	}

	symbol.SetASCIIOnly(cfg.Display.ASCII)
	globalConfig = cfg
	return nil
}

// runCalculator launches the interactive calculator
func runCalculator(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	log := logger.NewWithCallback("tui", isVerbose)

	p := ui.NewProgram(cfg)

	if cfg.Theme.AutoReload {
		watchTarget := cfgFile
		if watchTarget == "" {
			if path, found := config.FindConfigFile(); found {
				watchTarget = path
			}
		}
		if watchTarget != "" {
			stop, err := startConfigWatcher(watchTarget, p.Send)
			if err != nil {
				log.Warn("config watcher unavailable", logger.Err(err))
			} else {
				defer stop()
				log.Debug("watching config", logger.F("path", watchTarget))
			}
		}
	}

	start := time.Now()
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("calculator exited with error: %w", err)
	}
	log.Debug("session ended", logger.F("uptime", time.Since(start)))
	return nil
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			fmt.Printf("modcalc %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Global helpers
func isVerbose() bool {
	if globalConfig != nil && globalConfig.Output.Verbose {
		return true
	}
	return verbose
}

// GetGlobalConfig returns the resolved configuration, falling back to
// defaults before PersistentPreRunE has run.
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}
