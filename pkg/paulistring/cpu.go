package paulistring

import (
	"math/bits"

	"github.com/klauspost/cpuid/v2"
)

// hasHardwarePopcnt records whether the running CPU exposes a native
// POPCNT instruction. math/bits.OnesCount64 already compiles down to
// POPCNT on amd64/arm64 targets that support it; on older amd64 parts
// lacking the instruction the runtime falls back to a software
// SWAR count, matched here explicitly rather than assumed.
var hasHardwarePopcnt = cpuid.CPU.Has(cpuid.POPCNT)

func popcount(w uint64) int {
	if hasHardwarePopcnt {
		return bits.OnesCount64(w)
	}
	return swarPopcount(w)
}

// swarPopcount is the classic SWAR (SIMD within a register) bit-count,
// used only when the host CPU lacks a hardware POPCNT instruction.
func swarPopcount(w uint64) int {
	const (
		m1 = 0x5555555555555555
		m2 = 0x3333333333333333
		m4 = 0x0f0f0f0f0f0f0f0f
		h  = 0x0101010101010101
	)
	w -= (w >> 1) & m1
	w = (w & m2) + ((w >> 2) & m2)
	w = (w + (w >> 4)) & m4
	return int((w * h) >> 56)
}
