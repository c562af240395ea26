package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/ajroetker/go-halfvec/hwy"
	"github.com/ajroetker/go-halfvec/hwy/contrib/algo"
	"github.com/ajroetker/go-halfvec/hwy/contrib/workerpool"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type sweepOptions struct {
	kernel  string
	from    float64
	to      float64
	steps   int
	workers int
}

// errStats tracks the worst error seen.
type errStats struct {
	Max    float64
	WorstX float64
	Scored int
}

func (s *errStats) add(x, e float64) {
	s.Scored++
	if e > s.Max {
		s.Max, s.WorstX = e, x
	}
}

type sweepResult struct {
	Kernel  string
	Mode    errorMode
	Samples int
	Vector  errStats
	Fast    *errStats
}

// sweepPoints returns the distinct binary16 values of steps samples spread
// over [from, to], geometrically when logSpaced.
func sweepPoints(from, to float64, steps int, logSpaced bool) []hwy.Float16 {
	if steps < 2 {
		return []hwy.Float16{hwy.Float64ToFloat16(from)}
	}
	points := lo.Map(lo.Range(steps), func(i, _ int) hwy.Float16 {
		t := float64(i) / float64(steps-1)
		if logSpaced {
			return hwy.Float64ToFloat16(from * math.Pow(to/from, t))
		}
		return hwy.Float64ToFloat16(from + (to-from)*t)
	})
	return lo.Uniq(points)
}

func runSweep(ctx context.Context, k kernel, opts sweepOptions) (sweepResult, error) {
	from, to := opts.from, opts.to
	if !(from < to) {
		return sweepResult{}, fmt.Errorf("empty sweep range [%v, %v]", from, to)
	}
	if k.logSpaced && from <= 0 {
		return sweepResult{}, fmt.Errorf("kernel %s sweeps geometrically; --from must be positive, got %v", k.name, from)
	}
	if opts.steps < 1 {
		return sweepResult{}, fmt.Errorf("--steps must be positive, got %d", opts.steps)
	}

	input := sweepPoints(from, to, opts.steps, k.logSpaced)
	output := make([]hwy.Float16, len(input))
	pool := workerpool.New(workerpool.WithWorkers(opts.workers), workerpool.WithGrain(hwy.Lanes16x8))
	if err := algo.ParallelTransformF16(ctx, pool, input, output, k.fn); err != nil {
		return sweepResult{}, err
	}

	res := sweepResult{Kernel: k.name, Mode: k.mode, Samples: len(input)}
	if k.fast != nil {
		res.Fast = &errStats{}
	}
	for i, h := range input {
		x := h.Float64()
		want := k.ref(x)
		if e, ok := k.score(output[i].Float64(), want); ok {
			res.Vector.add(x, e)
		}
		if res.Fast != nil {
			if e, ok := k.score(k.fast(x), want); ok {
				res.Fast.add(x, e)
			}
		}
	}
	return res, nil
}

func printSweep(w io.Writer, res sweepResult) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "kernel %s: %d samples, %d scored (%s error)\n",
		res.Kernel, res.Samples, res.Vector.Scored, res.Mode)
	p.Fprintf(w, "  binary16 x8  max %.4g at x=%g\n", res.Vector.Max, res.Vector.WorstX)
	if res.Fast != nil {
		p.Fprintf(w, "  scalar fast  max %.4g at x=%g\n", res.Fast.Max, res.Fast.WorstX)
	}
}

func newSweepCmd(app *app) *cobra.Command {
	opts := sweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Measure a kernel's error over a range of inputs",
		Long: "Evaluates a kernel over evenly or geometrically spaced binary16 inputs and\n" +
			"reports the worst error against float64 math, alongside a scalar fast\n" +
			"approximation where one exists.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := lookupKernel(opts.kernel)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("from") {
				opts.from = k.from
			}
			if !cmd.Flags().Changed("to") {
				opts.to = k.to
			}
			log := app.log.WithKernel(k.name)

			start := time.Now()
			res, err := runSweep(cmd.Context(), k, opts)
			log.LogSweep(res.Samples, time.Since(start), err)
			if err != nil {
				return fmt.Errorf("sweep %s: %w", k.name, err)
			}
			printSweep(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.kernel, "kernel", "exp", "kernel to sweep")
	cmd.Flags().Float64Var(&opts.from, "from", 0, "first input (default: kernel domain)")
	cmd.Flags().Float64Var(&opts.to, "to", 0, "last input (default: kernel domain)")
	cmd.Flags().IntVar(&opts.steps, "steps", 4096, "number of samples before rounding to binary16")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "worker goroutines (0: GOMAXPROCS)")
	return cmd
}
