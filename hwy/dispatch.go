package hwy

import "github.com/xyproto/env/v2"

// DispatchLevel represents the SIMD instruction set detected on this CPU.
//
// The lane types in this package always execute the portable emulation, so
// the level is informational: it tells callers which hardware a native
// binary16 backend could target and lets tools report it.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// NoSimdEnvVar is the environment variable that forces scalar dispatch.
const NoSimdEnvVar = "HWY_NO_SIMD"

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the detected SIMD instruction set.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set to a true
// value ("1", "true", "yes", ...). When set, detection reports scalar
// regardless of CPU capabilities and no hardware FP16 features.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	return env.Bool(NoSimdEnvVar)
}

// detect runs the per-architecture probe unless HWY_NO_SIMD is set.
func detect(probe func()) {
	currentLevel = DispatchScalar
	hasFP16Arith = false
	hasF16C = false
	if NoSimdEnv() {
		return
	}
	probe()
}

var (
	// hasFP16Arith indicates native binary16 arithmetic (ARMv8.2 FPHP+ASIMDHP).
	hasFP16Arith bool

	// hasF16C indicates F16C support: float16 <-> float32 conversions (Haswell+).
	hasF16C bool
)

// HasFP16Arith returns true if the CPU can do binary16 arithmetic natively,
// both scalar and vector (ARMv8.2-A FEAT_FP16).
func HasFP16Arith() bool {
	return hasFP16Arith
}

// HasF16C returns true if the CPU supports F16C instructions.
// F16C provides hardware-accelerated float16 <-> float32 conversions.
// Present on Intel Haswell+ and AMD Piledriver+ CPUs.
func HasF16C() bool {
	return hasF16C
}
