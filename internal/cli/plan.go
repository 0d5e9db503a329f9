package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/layoutkit/pkg/blueprint"
)

// planOpts holds the command-line flags for the plan command.
type planOpts struct {
	json   bool   // emit JSON instead of a table
	output string // write to a file instead of stdout
}

// planCommand creates the plan command, which builds a blueprint and lists
// every constraint it produced.
func (c *CLI) planCommand() *cobra.Command {
	var opts planOpts

	cmd := &cobra.Command{
		Use:   "plan [file]",
		Short: "Build a blueprint and list its constraints",
		Long: `Build a blueprint against an in-memory engine and list every constraint,
grouped by the operation that created it. Filled dots mark installed
constraints, hollow ones those created with install = false.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "write the plan as JSON")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (c *CLI) runPlan(cmd *cobra.Command, path string, opts planOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	p, err := loadPlan(path, logger)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Built %d constraints from %d ops", len(p.Constraints()), len(p.Steps)))

	switch {
	case opts.json && opts.output != "":
		if err := p.ExportJSON(opts.output); err != nil {
			return err
		}
		printFile(opts.output)
	case opts.json:
		if err := p.WriteJSON(cmd.OutOrStdout()); err != nil {
			return err
		}
	case opts.output != "":
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.output, err)
		}
		writePlanTable(f, p, -1)
		if err := f.Close(); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		printFile(opts.output)
	default:
		writePlanTable(cmd.OutOrStdout(), p, -1)
	}

	for _, conflict := range p.Engine.Conflicts() {
		printWarning("conflict: %s vs %s", conflict.A, conflict.B)
	}
	return nil
}

// writePlanTable renders every step's constraints as one table.
func writePlanTable(w io.Writer, p *blueprint.Plan, cursor int) {
	var rows []constraintRow
	for _, s := range p.Steps {
		for _, c := range s.Constraints {
			rows = append(rows, constraintRow{step: s.Index, kind: s.Kind, c: c})
		}
	}
	renderConstraintTable(w, rows, cursor)
}
