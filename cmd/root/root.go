// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/expense-categorizer/internal/config"
	"fjacquet/expense-categorizer/internal/container"
	"fjacquet/expense-categorizer/internal/logging"

	"github.com/spf13/cobra"
)

// GlobalFlags holds the persistent flags shared by every command
type GlobalFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	Variant    string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// AppContainer is built by Setup before any command runs
	AppContainer *container.Container

	// Flags are the persistent flags of the root command
	Flags = GlobalFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-categorizer",
		Short: "Categorize expense descriptions into spending categories.",
		Long: `expense-categorizer assigns free-text expense descriptions to one of a
fixed set of spending categories using keyword, brand and amount heuristics.
Corrections can be recorded so that the categorizer learns new keywords.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expense-categorizer!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := Setup(); err != nil {
				Log.Fatalf("Failed to initialize: %v", err)
			}
		},
		// learned keywords are saved whichever command ran
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			Teardown()
		},
	}
)

// Init registers the persistent flags on the root command
func Init() {
	Cmd.PersistentFlags().StringVar(&Flags.ConfigFile, "config", "", "Config file (default searches $HOME/.expense-categorizer, ./.expense-categorizer and .)")
	Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&Flags.LogFormat, "log-format", "", "Log format (text or json)")
	Cmd.PersistentFlags().StringVar(&Flags.Variant, "variant", "", "Scoring variant (brand-aware or pattern)")
}

// Setup loads the configuration, applies flag overrides and builds the
// application container.
func Setup() error {
	config.LoadEnv()

	cfg, err := config.InitializeConfigFromFile(Flags.ConfigFile)
	if err != nil {
		return err
	}
	if err := ApplyFlags(cfg, Flags); err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// ApplyFlags overrides cfg with every non-empty flag and revalidates it.
func ApplyFlags(cfg *config.Config, flags GlobalFlags) error {
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.Log.Format = flags.LogFormat
	}
	if flags.Variant != "" {
		cfg.Categorizer.Variant = flags.Variant
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// Teardown persists learned keywords and releases the container.
func Teardown() {
	if AppContainer == nil {
		return
	}
	if err := AppContainer.SaveLearned(); err != nil {
		Log.WithError(err).Warn("Failed to save learned keywords")
	}
	if err := AppContainer.Close(); err != nil {
		Log.WithError(err).Warn("Failed to close container")
	}
	AppContainer = nil
}

// GetContainer returns the application container, failing the command when
// Setup has not run.
func GetContainer() *container.Container {
	if AppContainer == nil {
		Log.Fatal("Application container is not initialized")
	}
	return AppContainer
}
