package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keycoach/keycoach/pkg/charset"
	"github.com/keycoach/keycoach/pkg/config"
	"github.com/keycoach/keycoach/pkg/content"
	"github.com/keycoach/keycoach/pkg/output"
)

var (
	// Global flags
	cfgFile      string
	outputFormat string
	contentPath  string

	// Shared state set during PersistentPreRun
	cfg       *config.Config
	formatter output.Formatter
)

// rootCmd is the base command for keycoach.
var rootCmd = &cobra.Command{
	Use:   "keycoach",
	Short: "Password coaching from your terminal",
	Long: `Keycoach generates strong passwords, estimates the strength of
candidates you already have, and teaches the habits behind both through
short lessons and quizzes. Everything runs locally: no password or
candidate ever leaves your terminal or gets written anywhere.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Override config with flags
		if outputFormat != "" {
			cfg.OutputFormat = outputFormat
		}

		// Create output formatter
		formatter = output.NewFormatter(cfg.OutputFormat)

		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// SetFormatter allows tests to inject a formatter.
func SetFormatter(f output.Formatter) {
	formatter = f
}

// RootCmd returns the root cobra.Command for testing purposes.
func RootCmd() *cobra.Command {
	return rootCmd
}

// loadLibrary returns the curriculum from --content, the configured
// content_path, or the embedded default, in that order.
func loadLibrary() (*content.Library, error) {
	path := contentPath
	if path == "" {
		path = cfg.ContentPath
	}
	if path == "" {
		return content.Default()
	}
	return content.LoadFile(path)
}

// resolveClasses turns --classes values into catalog classes, falling
// back to the configured defaults when no flag was given.
func resolveClasses(names []string) ([]charset.Class, error) {
	if len(names) == 0 {
		return cfg.Classes()
	}
	classes, err := charset.ParseList(names)
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, fmt.Errorf("at least one character class is required")
	}
	return classes, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.keycoach/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json, yaml (default \"table\")")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "curriculum YAML file (default is the embedded curriculum)")
}
