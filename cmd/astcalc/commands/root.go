// Package commands defines the astcalc command-line interface.
package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rickymagner/ast-calc/internal/config"
	"github.com/rickymagner/ast-calc/internal/log"
	"github.com/rickymagner/ast-calc/internal/repl"
)

// rootOptions holds flag values and the resolved configuration shared by
// all commands.
type rootOptions struct {
	cfgFile string
	debug   bool
	cfg     *config.Config
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "astcalc",
		Short: "An arithmetic expression calculator",
		Long: `astcalc is a calculator for arithmetic expressions.

Run it with no arguments for an interactive prompt. Expressions support
addition, subtraction, multiplication, division, exponentiation, negation,
factorial, and the functions sin, cos, tan, exp, and ln. The --ast flag
prints the parse tree of each expression before its value, rendered as a
hierarchy listing or a two-dimensional grid.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.New(o.cfg).Run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&o.cfgFile, "config", "c", "", "config file (default $HOME/.astcalc.yaml)")
	rootCmd.PersistentFlags().BoolP("ast", "a", false, "print the AST of each expression before evaluating")
	rootCmd.PersistentFlags().StringP("view", "v", config.DefaultView, "AST rendering, hierarchy or grid")
	rootCmd.PersistentFlags().BoolVarP(&o.debug, "debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(
		NewEvalCommand(o),
		NewVersionCommand(),
	)

	return rootCmd
}

// setup resolves configuration from file, environment, and flags, and
// initializes logging. An unreadable config file degrades to the built-in
// defaults with a warning.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile, cmd.Flags())
	if err != nil {
		log.Warnf("%v", err)
		cfg = config.Default()
	}

	if cmd.Flags().Changed("view") && !cfg.AST {
		return errors.New("flag --view requires --ast")
	}
	view, err := config.NormalizeView(cfg.View)
	if err != nil {
		return err
	}
	cfg.View = view

	if err := log.Init(cfg.LogLevel, o.debug); err != nil {
		return err
	}

	o.cfg = cfg
	return nil
}
