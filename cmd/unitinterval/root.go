package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// precision selects the floating-point type values are parsed into.
type precision int

var _ pflag.Value = (*precision)(nil)

func (p *precision) String() string {
	return strconv.Itoa(int(*p))
}

func (p *precision) Set(s string) error {
	switch s {
	case "32":
		*p = 32
	case "64":
		*p = 64
	default:
		return fmt.Errorf("precision must be 32 or 64, got %q", s)
	}
	return nil
}

func (p *precision) Type() string {
	return "bits"
}

type options struct {
	prec precision
}

func newRootCmd() *cobra.Command {
	opts := &options{prec: 64}
	cmd := &cobra.Command{
		Use:           "unitinterval",
		Short:         "Validate, combine and sample values in [0, 1]",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().VarP(&opts.prec, "precision", "p", "floating-point precision in bits (32 or 64)")
	cmd.AddCommand(
		newCheckCmd(opts),
		newComplementCmd(opts),
		newMulCmd(opts),
		newSampleCmd(opts),
	)
	return cmd
}

func execute(args []string) int {
	return run(args, os.Stdout, os.Stderr)
}

// run executes the command tree with args and returns the exit code.
func run(args []string, out, errOut io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}
