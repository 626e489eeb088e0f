// Package cli implements the themes command line.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/themes/internal/config"
	"github.com/opencode-ai/themes/internal/logging"
	"github.com/opencode-ai/themes/internal/themes"
)

var (
	cfgFile        string
	jsonOutput     bool
	logLevel       string
	projectDir     string
	noProgress     bool
	nonInteractive bool

	appConfig *config.Config
	logger    = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:           "themes",
	Short:         "Build and preview editor color themes",
	Long:          "Build, inspect, validate and preview the color themes consumed by the editor's styling layer.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ~/.config/themes/config.yaml)")
	flags.BoolVar(&jsonOutput, "json", false, "emit JSON output")
	flags.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.StringVar(&projectDir, "project", "", "project directory searched for .themes/")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or launch the preview")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	l, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = l
	logger.Debug().Str("config", cfgFile).Str("project", projectDir).Msg("configuration loaded")
	return nil
}

// GetConfig returns the loaded configuration, or defaults before loading.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

func searchPaths() []string {
	paths := themes.SearchPaths(projectDir)
	return append(paths, GetConfig().Theme.SearchPaths...)
}

func openRegistry() (*themes.Registry, error) {
	return themes.New(logger, themes.WithSearchPaths(searchPaths()...))
}

// resolveThemeName accepts a theme name or a family such as "solarized",
// which resolves to the member matching the terminal background.
func resolveThemeName(reg *themes.Registry, name string) (string, error) {
	if name == "" {
		name = GetConfig().Theme.Default
	}
	if entry, err := reg.Entry(name); err == nil {
		return entry.Theme.Name, nil
	}

	dark := themes.DetectDark()
	family := themes.Family(name)
	for _, candidate := range []string{family + "-dark", family + "-light"} {
		if _, err := reg.Entry(candidate); err != nil {
			continue
		}
		return reg.Variant(candidate, dark)
	}

	return "", fmt.Errorf("%w: %s", themes.ErrUnknownTheme, name)
}
