// Package cmd is the edna-quiz command line.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"edna-quiz/config"
	"edna-quiz/quiz"
)

type rootOptions struct {
	configPath string
	dataSource string
	lang       string
	level      string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the command tree. Without a subcommand it plays the
// terminal quiz.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	root := &cobra.Command{
		Use:           "edna-quiz",
		Short:         "Match eDNA codes to the species they came from",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("loading .env: %w", err)
			}

			cfg, err := config.Load(o.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("data") {
				cfg.Data.Source = o.dataSource
			}
			if cmd.Flags().Changed("lang") {
				cfg.Quiz.Lang = o.lang
			}
			if cmd.Flags().Changed("level") {
				cfg.Quiz.Level = o.level
			}
			if o.verbose {
				cfg.Log.Level = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config: validate: %w", err)
			}

			o.cfg = cfg
			o.logger = NewLogger(cfg.Log, os.Stderr)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, o)
		},
	}

	root.PersistentFlags().StringVar(&o.configPath, "config", "", "Path to configuration file (default $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().StringVar(&o.dataSource, "data", quiz.DefaultSource, "Dataset file path or http(s) URL")
	root.PersistentFlags().StringVar(&o.lang, "lang", "en", "Locale: en or cz")
	root.PersistentFlags().StringVar(&o.level, "level", string(quiz.LevelIcons), "Display level: icons or sequences")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newPlayCmd(o),
		newServeCmd(o),
		newSpeciesCmd(o),
		newInspectCmd(o),
	)
	return root
}

// Execute runs the command line.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) locale() quiz.Locale {
	loc, _ := quiz.ParseLocale(o.cfg.Quiz.Lang)
	return loc
}

// serverLocale is the configured locale, or empty to let the web server
// detect it per request.
func (o *rootOptions) serverLocale() quiz.Locale {
	if loc, ok := quiz.ParseLocale(o.cfg.Quiz.Lang); ok {
		return loc
	}
	return ""
}

func (o *rootOptions) displayLevel() quiz.Level {
	return quiz.ParseLevel(o.cfg.Quiz.Level)
}

func (o *rootOptions) load(cmd *cobra.Command) (*quiz.Catalog, error) {
	o.logger.Debug("loading dataset", "source", o.cfg.Data.Source)
	c, err := quiz.Load(cmd.Context(), o.cfg.Data.Source, nil)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("dataset loaded",
		"water_types", len(c.WaterKeys()),
		"extras", len(c.Data.Extras),
	)
	return c, nil
}
