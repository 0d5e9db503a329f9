package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/layoutkit/pkg/blueprint"
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
)

// checkCommand creates the check command, which validates blueprints by
// building them.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate one or more blueprints",
		Long: `Load and build each blueprint, reporting the first error in each file
with its error code (NO_SUPERVIEW, NO_COMMON_ANCESTOR, INVALID_FORMAT, ...).
Conflicting required constraints are reported as warnings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			failed := 0
			for _, path := range args {
				p, err := loadPlan(path, logger)
				if err != nil {
					failed++
					printError(lkerr.Wrap(lkerr.GetCode(err), err, "%s", path))
					continue
				}
				printSuccess("%s", path)
				printStats(len(p.Constraints()), p.Engine.Stats())
				for _, conflict := range p.Engine.Conflicts() {
					printWarning("conflict: %s vs %s", conflict.A, conflict.B)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d blueprints failed", failed, len(args))
			}
			return nil
		},
	}
}

// kindsCommand lists the operation kinds accepted in [[op]] tables.
func (c *CLI) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List blueprint operation kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(blueprint.Kinds(), "\n"))
			return nil
		},
	}
}
