package blake3

import "github.com/klauspost/cpuid/v2"

// wideLanesAvailable reports whether the running CPU has wide enough SIMD
// registers (AVX2 or better) that batching several chunks' compressions
// together would pay for itself on real hardware. This package has no
// assembly of its own, so the scalar 4-lane path in compress4x.go runs
// identically either way; wideLanesAvailable only gates whether Write
// bothers routing through it, since on a narrow CPU the bookkeeping
// overhead of batching four chunks is not worth it over the plain
// chunk-at-a-time path.
var wideLanesAvailable = cpuid.CPU.Supports(cpuid.AVX2)
