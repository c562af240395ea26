package main

import (
	"fmt"
	"strconv"

	"github.com/ajroetker/go-halfvec/hwy"
	"github.com/ajroetker/go-halfvec/hwy/contrib/algo"
	"github.com/spf13/cobra"
)

func parseInputs(args []string) ([]hwy.Float16, error) {
	out := make([]hwy.Float16, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("parse input %q: %w", arg, err)
		}
		out = append(out, hwy.Float64ToFloat16(v))
	}
	return out, nil
}

func newEvalCmd(app *app) *cobra.Command {
	var kernelName string
	cmd := &cobra.Command{
		Use:   "eval --kernel K VALUE...",
		Short: "Evaluate a kernel on the given values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := lookupKernel(kernelName)
			if err != nil {
				return err
			}
			input, err := parseInputs(args)
			if err != nil {
				return err
			}

			output := make([]hwy.Float16, len(input))
			algo.TransformF16(input, output, k.fn)
			app.log.WithKernel(k.name).Debug("evaluated",
				"vectors", (len(input)+hwy.Lanes16x8-1)/hwy.Lanes16x8,
			)

			w := cmd.OutOrStdout()
			for i, x := range input {
				got := output[i].Float64()
				want := k.ref(x.Float64())
				fmt.Fprintf(w, "%s(%g) = %g  [0x%04X]  ref %g\n",
					k.name, x.Float64(), got, output[i].Bits(), want)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kernelName, "kernel", "exp", "kernel to evaluate")
	return cmd
}
