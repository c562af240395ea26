//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	detect(detectARM64)
}

func detectARM64() {
	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
	}

	// FEAT_FP16: scalar (FPHP) and vector (ASIMDHP) half-precision arithmetic.
	hasFP16Arith = cpu.ARM64.HasFPHP && cpu.ARM64.HasASIMDHP
}
