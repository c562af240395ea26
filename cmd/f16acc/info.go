package main

import (
	"fmt"
	"runtime"

	"github.com/ajroetker/go-halfvec/hwy"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected dispatch level and half-precision capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "arch:            %s\n", runtime.GOARCH)
			fmt.Fprintf(w, "dispatch level:  %s\n", hwy.CurrentName())
			fmt.Fprintf(w, "%s:     %t\n", hwy.NoSimdEnvVar, hwy.NoSimdEnv())
			fmt.Fprintf(w, "fp16 arithmetic: %t\n", hwy.HasFP16Arith())
			fmt.Fprintf(w, "f16c:            %t\n", hwy.HasF16C())
			fmt.Fprintf(w, "lanes:           %d\n", hwy.Lanes16x8)
			fmt.Fprintf(w, "kernels:         %v\n", kernelNames())
			return nil
		},
	}
}
