// Package cli implements the mirrorkit command-line interface.
//
// This package provides commands for inspecting arbitrary structured data,
// producing deep copies and frozen snapshots, and rendering object graphs.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - inspect: Show the entry tree of a JSON, TOML, or YAML document
//   - clone: Deep-copy (optionally freeze) a document and write the result
//   - graph: Render a document's object graph as DOT, SVG, or PNG
//   - explore: Browse a document's entries interactively
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mirrorkit/mirrorkit/pkg/buildinfo"
	mirrorcopy "github.com/mirrorkit/mirrorkit/pkg/copy"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "mirrorkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Defaults are the copy options loaded from the config file, applied
	// before per-command flags.
	Defaults mirrorcopy.Options
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Defaults: mirrorcopy.DefaultOptions(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "mirrorkit",
		Short:        "Mirrorkit deep-copies, freezes, and visualizes structured data",
		Long:         `Mirrorkit is a CLI tool for working with arbitrarily shaped data: it produces independent deep copies, immutable frozen snapshots, and object-graph visualizations, with guaranteed termination on cyclic input.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath())
			if err != nil {
				return err
			}
			if cfg != nil {
				c.Defaults = cfg.toOptions()
				c.Logger.Debug("loaded config", "path", configPath())
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cloneCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// configPath returns the config file path using XDG standard
// (~/.config/mirrorkit/config.toml).
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
