package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/layoutkit/pkg/blueprint"
	"github.com/matzehuels/layoutkit/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "layoutkit"
)

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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Layoutkit builds declarative layout constraints",
		Long:         `Layoutkit turns layout blueprints (a view hierarchy plus pin, align, match and distribute operations) into the linear constraints a layout engine solves, and lets you inspect, graph and toggle them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.kindsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Blueprint Loading
// =============================================================================

// loadPlan reads and builds the blueprint at path.
func loadPlan(path string, logger *log.Logger) (*blueprint.Plan, error) {
	bp, err := blueprint.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("blueprint loaded", "file", filepath.Base(path), "views", len(bp.Views), "ops", len(bp.Ops))
	return bp.Build(logger)
}

// outputFormat infers the output format from a file extension. An empty
// path means DOT on stdout.
func outputFormat(path string) string {
	if path == "" {
		return "dot"
	}
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "gv":
		return "dot"
	default:
		return ext
	}
}
