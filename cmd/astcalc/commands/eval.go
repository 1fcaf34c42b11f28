package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rickymagner/ast-calc/internal/log"
	"github.com/rickymagner/ast-calc/internal/repl"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate expressions without the interactive prompt",
		Long: `Evaluate an expression given as arguments, or, with no arguments,
evaluate each line read from standard input.`,
		Example: `  astcalc eval '1 + 2 * 3'
  astcalc eval --ast --view=grid '2^3!'
  echo '5^2' | astcalc eval`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return repl.EvalLine(cmd.OutOrStdout(), strings.Join(args, " "), o.cfg.AST, o.cfg.View)
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			bad := 0
			for sc.Scan() {
				line := sc.Text()
				if strings.TrimSpace(line) == "" {
					continue
				}
				if err := repl.EvalLine(cmd.OutOrStdout(), line, o.cfg.AST, o.cfg.View); err != nil {
					log.Errorf("%v", err)
					bad++
				}
			}
			if err := sc.Err(); err != nil {
				return err
			}
			if bad > 0 {
				return fmt.Errorf("%d expression(s) failed", bad)
			}
			return nil
		},
	}
}
