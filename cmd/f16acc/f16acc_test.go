package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ajroetker/go-halfvec/hwy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&app{log: NoopLogger()}, &errOut)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunSweep_Bounds(t *testing.T) {
	bounds := map[string]float64{
		"exp":       5e-3,
		"exp-trunc": 5e-3,
		"log":       0.05,
		"recip":     1e-3,
		"recip-med": 1e-3,
		"pow2":      0.1,
	}
	for _, name := range kernelNames() {
		t.Run(name, func(t *testing.T) {
			k, err := lookupKernel(name)
			require.NoError(t, err)

			res, err := runSweep(context.Background(), k, sweepOptions{
				from: k.from, to: k.to, steps: 2000, workers: 3,
			})
			require.NoError(t, err)

			assert.Equal(t, name, res.Kernel)
			assert.Positive(t, res.Vector.Scored)
			assert.LessOrEqual(t, res.Vector.Scored, res.Samples)
			assert.Less(t, res.Vector.Max, bounds[name], "worst at x=%v", res.Vector.WorstX)
			assert.Equal(t, k.fast != nil, res.Fast != nil)
		})
	}
}

func TestSweepPoints(t *testing.T) {
	pts := sweepPoints(1, 2, 5000, false)
	// [1, 2] holds 1025 binary16 values.
	assert.Len(t, pts, 1025)
	assert.Equal(t, hwy.Float16One, pts[0])
	assert.Equal(t, hwy.Float16Two, pts[len(pts)-1])

	geo := sweepPoints(1, 1024, 11, true)
	want := []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024}
	require.Len(t, geo, len(want))
	for i := range want {
		assert.Equal(t, want[i], geo[i].Float64())
	}

	assert.Len(t, sweepPoints(3, 4, 1, false), 1)
}

func TestRunSweep_Errors(t *testing.T) {
	exp, err := lookupKernel("exp")
	require.NoError(t, err)
	logK, err := lookupKernel("log")
	require.NoError(t, err)

	_, err = runSweep(context.Background(), exp, sweepOptions{from: 2, to: 1, steps: 10})
	assert.Error(t, err)
	_, err = runSweep(context.Background(), logK, sweepOptions{from: 0, to: 1, steps: 10})
	assert.Error(t, err)
	_, err = runSweep(context.Background(), exp, sweepOptions{from: 0, to: 1, steps: 0})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runSweep(ctx, exp, sweepOptions{from: 0, to: 1, steps: 100})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestKernelFastBaselines(t *testing.T) {
	for _, name := range []string{"exp", "exp-trunc", "log", "pow2"} {
		k, err := lookupKernel(name)
		require.NoError(t, err)
		require.NotNil(t, k.fast, name)

		x := 1.5
		if !k.logSpaced {
			x = -0.75
		}
		e, ok := k.score(k.fast(x), k.ref(x))
		require.True(t, ok, name)
		assert.Less(t, e, 1e-2, "%s fast(%v)", name, x)
	}
}

func TestLookupKernel(t *testing.T) {
	_, err := lookupKernel("sqrt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recip-med")
}

func TestInfoCmd(t *testing.T) {
	out, _, err := execute(t, "info")
	require.NoError(t, err)

	assert.Contains(t, out, "dispatch level:  "+hwy.CurrentName())
	assert.Contains(t, out, "lanes:           8")
	assert.Contains(t, out, hwy.NoSimdEnvVar)
}

func TestSweepCmd(t *testing.T) {
	out, _, err := execute(t, "sweep", "--kernel", "log", "--steps", "20000")
	require.NoError(t, err)

	// Thousands separators come from the English printer.
	assert.Contains(t, out, "kernel log: ")
	assert.Regexp(t, `\d{1,2},\d{3} samples`, out)
	assert.Contains(t, out, "binary16 x8")
	assert.Contains(t, out, "scalar fast")

	out, _, err = execute(t, "sweep", "--kernel", "recip", "--from", "0.5", "--to", "4", "--steps", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "kernel recip: 100 samples")
	assert.NotContains(t, out, "scalar fast")
}

func TestSweepCmd_JSONLog(t *testing.T) {
	_, stderr, err := execute(t, "sweep", "--kernel", "exp", "--from", "-4", "--to", "4",
		"--steps", "64", "--log-format", "json", "--verbose")
	require.NoError(t, err)

	line := strings.TrimSpace(stderr)
	require.NotEmpty(t, line)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &rec))
	assert.Equal(t, "sweep completed", rec["msg"])
	assert.Equal(t, "exp", rec["kernel"])
	assert.EqualValues(t, 64, rec["samples"])
}

func TestSweepCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "sweep", "--kernel", "tan")
	assert.Error(t, err)

	_, _, err = execute(t, "sweep", "--kernel", "log", "--from", "-1")
	assert.Error(t, err)

	_, _, err = execute(t, "info", "--log-format", "xml")
	assert.Error(t, err)
}

func TestEvalCmd(t *testing.T) {
	out, _, err := execute(t, "eval", "--kernel", "recip", "--", "2", "0.5", "-4", "0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "recip(2) = 0.5  [0x3800]"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "recip(0.5) = 2  [0x4000]"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "recip(-4) = -0.25  [0xB400]"), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "recip(0) = +Inf  [0x7C00]"), lines[3])

	_, stderr, err := execute(t, "eval", "--kernel", "exp", "--log-format", "json", "--verbose",
		"--", "0", "1", "2", "3", "4", "5", "6", "7", "-1")
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(stderr)), &rec))
	assert.Equal(t, "evaluated", rec["msg"])
	assert.EqualValues(t, 2, rec["vectors"])

	_, _, err = execute(t, "eval", "--kernel", "exp", "abc")
	assert.Error(t, err)

	_, _, err = execute(t, "eval", "--kernel", "exp")
	assert.Error(t, err)
}
