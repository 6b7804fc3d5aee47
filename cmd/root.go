// Package cmd defines the command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tedit/pkg/app"
	"tedit/pkg/config"
	"tedit/pkg/log"
)

var (
	// Root command flags
	verbose    bool
	configPath string

	rootCmd = &cobra.Command{
		Use:               "tedit",
		Short:             "A full-screen terminal editor core",
		Long:              "tedit drives a VT100-compatible terminal in raw mode: it probes the screen geometry, decodes keys including escape sequences, and renders flicker-free full-screen frames.",
		Version:           "0.1.0",
		RunE:              runEditor,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
)

// Execute runs the root command. Any error has already been reported with
// the terminal restored; the process exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config directory (default: user config dir)")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}

// loadConfig resolves the configuration, honoring the --config override.
func loadConfig() (config.Config, *config.FileManager, error) {
	dir := configPath
	if dir == "" {
		var err error
		dir, err = config.DefaultConfigDir()
		if err != nil {
			return config.Config{}, nil, err
		}
	}
	manager := config.NewFileManager(dir)
	cfg, err := manager.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, manager, nil
}

// setupLogging wires the log sink. Output goes to a file so it never mixes
// with the rendered screen.
func setupLogging(cfg config.Config) {
	if verbose || cfg.Verbose {
		log.SetLevel(log.LevelDebug)
	}
	if cfg.LogFile != "" {
		if err := log.OpenFile(cfg.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
}

// runEditor is the root command: run the full-screen editor loop.
func runEditor(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)
	defer log.Close()

	return app.NewRunner(cfg).Run()
}
