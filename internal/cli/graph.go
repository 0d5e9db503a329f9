package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/layoutkit/pkg/render/nodelink"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output        string // output file; the extension picks the format
	detailed      bool   // list fixed sizes and margins in node labels
	installedOnly bool   // drop uninstalled constraints
	noHierarchy   bool   // hide containment edges
}

// validGraphFormats is the set of supported output formats.
var validGraphFormats = map[string]bool{"dot": true, "svg": true, "pdf": true, "png": true}

// graphCommand creates the graph command, which draws a blueprint's
// hierarchy and constraints.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Draw a blueprint's constraints as a node-link diagram",
		Long: `Draw the view hierarchy and every two-item constraint of a blueprint.
Without --output the Graphviz DOT source is written to stdout; otherwise
the file extension selects dot, svg, pdf or png.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := outputFormat(opts.output)
			if !validGraphFormats[format] {
				return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', 'pdf', or 'png')", format)
			}
			return c.runGraph(cmd, args[0], format, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.dot, .svg, .pdf, .png)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show fixed sizes and margins in node labels")
	cmd.Flags().BoolVar(&opts.installedOnly, "installed-only", false, "omit constraints that are not installed")
	cmd.Flags().BoolVar(&opts.noHierarchy, "no-hierarchy", false, "omit parent/child edges")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, path, format string, opts graphOpts) error {
	logger := loggerFromContext(cmd.Context())

	p, err := loadPlan(path, logger)
	if err != nil {
		return err
	}
	dot := nodelink.ToDOT(p.Roots(), p.Constraints(), nodelink.Options{
		Detailed:      opts.detailed,
		InstalledOnly: opts.installedOnly,
		HideHierarchy: opts.noHierarchy,
	})

	if opts.output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), dot)
		return err
	}

	prog := newProgress(logger)
	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = nodelink.RenderSVG(dot)
	case "pdf":
		data, err = nodelink.RenderPDF(dot)
	case "png":
		data, err = nodelink.RenderPNG(dot, 2.0)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done(fmt.Sprintf("Rendered %s", format))
	printFile(opts.output)
	return nil
}
