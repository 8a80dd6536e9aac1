package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"

	unitinterval "github.com/frsrblch/unit-interval"
)

// parse converts s into a unit interval value of type T.
func parse[T unitinterval.Float](s string, bits int) (unitinterval.UnitInterval[T], error) {
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return unitinterval.UnitInterval[T]{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return unitinterval.New(T(f))
}

func parseAll[T unitinterval.Float](args []string, bits int) ([]unitinterval.UnitInterval[T], error) {
	us := make([]unitinterval.UnitInterval[T], 0, len(args))
	for _, s := range args {
		u, err := parse[T](s, bits)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	return us, nil
}

// dispatch runs f with the type matching the selected precision.
func dispatch(p precision, f32 func() error, f64 func() error) error {
	if p == 32 {
		return f32()
	}
	return f64()
}

func check[T unitinterval.Float](out, errOut io.Writer, args []string, bits int) error {
	failed := 0
	for _, s := range args {
		u, err := parse[T](s, bits)
		if err != nil {
			fmt.Fprintln(errOut, err)
			failed++
			continue
		}
		fmt.Fprintln(out, u)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d value(s) rejected", failed, len(args))
	}
	return nil
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <value>...",
		Short: "Check that every value lies within [0, 1]",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			return dispatch(opts.prec,
				func() error { return check[float32](out, errOut, args, 32) },
				func() error { return check[float64](out, errOut, args, 64) },
			)
		},
	}
}

func complement[T unitinterval.Float](out io.Writer, arg string, bits int) error {
	u, err := parse[T](arg, bits)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, u.Complement())
	return nil
}

func newComplementCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "complement <value>",
		Short: "Print 1 - value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return dispatch(opts.prec,
				func() error { return complement[float32](out, args[0], 32) },
				func() error { return complement[float64](out, args[0], 64) },
			)
		},
	}
}

func product[T unitinterval.Float](out io.Writer, args []string, bits int) error {
	us, err := parseAll[T](args, bits)
	if err != nil {
		return err
	}
	r := unitinterval.One[T]()
	for _, u := range us {
		r = r.Mul(u)
	}
	fmt.Fprintln(out, r)
	return nil
}

func newMulCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mul <value>...",
		Short: "Print the product of all values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return dispatch(opts.prec,
				func() error { return product[float32](out, args, 32) },
				func() error { return product[float64](out, args, 64) },
			)
		},
	}
}

func draw[T unitinterval.Float](out io.Writer, src rand.Source, count int) {
	s := unitinterval.NewSampler[T](src)
	for i := 0; i < count; i++ {
		fmt.Fprintln(out, s.Next())
	}
}

func newSampleCmd(opts *options) *cobra.Command {
	var (
		count int
		seed  uint64
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print values drawn uniformly from [0, 1]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return fmt.Errorf("count must not be negative, got %d", count)
			}
			if seed == 0 {
				seed = rand.Uint64()
			}
			src := rand.NewPCG(seed, seed)
			out := cmd.OutOrStdout()
			return dispatch(opts.prec,
				func() error { draw[float32](out, src, count); return nil },
				func() error { draw[float64](out, src, count); return nil },
			)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of samples")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "PCG seed, 0 picks a random one")
	return cmd
}
