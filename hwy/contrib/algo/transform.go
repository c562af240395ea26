package algo

import (
	"context"
	"fmt"

	"github.com/ajroetker/go-halfvec/hwy"
	"github.com/ajroetker/go-halfvec/hwy/contrib/math"
	"github.com/ajroetker/go-halfvec/hwy/contrib/workerpool"
)

// Function types for the slice transforms.
type (
	// VecFunc16 is an operation on eight binary16 lanes.
	VecFunc16 func(hwy.Float16x8) hwy.Float16x8

	// VecFunc16Binary is a lane-wise operation on two vectors.
	VecFunc16Binary func(x, y hwy.Float16x8) hwy.Float16x8
)

// loadTail loads the last partial chunk. Lanes past the end of src are 1.0 so
// that log and reciprocal stay finite on padding; they are never stored.
func loadTail(src []hwy.Float16) hwy.Float16x8 {
	v := hwy.BroadcastF16x8(hwy.Float16One)
	copy(v[:], src)
	return v
}

// TransformF16 applies fn to input eight lanes at a time, storing results in
// output. Only min(len(input), len(output)) elements are processed.
//
// Example usage:
//
//	TransformF16(input, output, func(x hwy.Float16x8) hwy.Float16x8 {
//	    return x.MulAdd(x, x) // x² + x
//	})
func TransformF16(input, output []hwy.Float16, fn VecFunc16) {
	n := min(len(input), len(output))
	hwy.ProcessWithTail16x8(n,
		func(offset int) {
			fn(hwy.LoadFloat16x8Slice(input[offset:])).StoreSlice(output[offset:])
		},
		func(offset, count int) {
			fn(loadTail(input[offset : offset+count])).StoreSlicePart(output[offset : offset+count])
		},
	)
}

// Transform2F16 applies fn lane-wise to a and b, storing results in output.
// Only the common prefix of the three slices is processed.
func Transform2F16(a, b, output []hwy.Float16, fn VecFunc16Binary) {
	n := min(len(a), len(b), len(output))
	hwy.ProcessWithTail16x8(n,
		func(offset int) {
			x := hwy.LoadFloat16x8Slice(a[offset:])
			y := hwy.LoadFloat16x8Slice(b[offset:])
			fn(x, y).StoreSlice(output[offset:])
		},
		func(offset, count int) {
			x := loadTail(a[offset : offset+count])
			y := loadTail(b[offset : offset+count])
			fn(x, y).StoreSlicePart(output[offset : offset+count])
		},
	)
}

// ExpTransformF16 applies exp(x) to each element.
func ExpTransformF16(input, output []hwy.Float16) {
	TransformF16(input, output, math.Exp_F16x8)
}

// LogTransformF16 applies ln(x) to each element.
func LogTransformF16(input, output []hwy.Float16) {
	TransformF16(input, output, math.Log_F16x8)
}

// ReciprocalTransformF16 applies 1/x to each element.
func ReciprocalTransformF16(input, output []hwy.Float16) {
	TransformF16(input, output, math.ReciprocalHiPrec_F16x8)
}

// DivTransformF16 computes num[i] / den[i].
func DivTransformF16(num, den, output []hwy.Float16) {
	Transform2F16(num, den, output, math.Div_F16x8)
}

// PowTransformF16 computes base[i] ^ exp[i].
func PowTransformF16(base, exp, output []hwy.Float16) {
	Transform2F16(base, exp, output, math.Pow_F16x8)
}

// PowIntTransformF16 raises each element to the constant integer power nb.
func PowIntTransformF16(input, output []hwy.Float16, nb int) {
	TransformF16(input, output, func(x hwy.Float16x8) hwy.Float16x8 {
		return math.PowInt_F16x8(x, nb)
	})
}

// ParallelTransformF16 is TransformF16 split across pool. Ranges handed to
// each worker start on an eight-lane boundary, so the result is identical to
// the sequential transform. A nil pool uses workerpool.New defaults.
func ParallelTransformF16(ctx context.Context, pool *workerpool.Pool, input, output []hwy.Float16, fn VecFunc16) error {
	if pool == nil {
		pool = workerpool.New(workerpool.WithGrain(hwy.Lanes16x8))
	}
	grain := hwy.AlignedSize16x8(max(pool.Grain(), 1))
	n := min(len(input), len(output))
	units := (n + grain - 1) / grain

	err := pool.ParallelFor(ctx, units, func(start, end int) error {
		lo, hi := start*grain, min(end*grain, n)
		TransformF16(input[lo:hi], output[lo:hi], fn)
		return nil
	})
	if err != nil {
		return fmt.Errorf("parallel transform of %d elements: %w", n, err)
	}
	return nil
}
