package tinyskia

import (
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sys/cpu"
)

// disableSIMDEnv turns off the block paths when set to "1".
const disableSIMDEnv = "TINYSKIA_DISABLE_SIMD"

// blockMode selects how many pixels the source-over compositor processes
// per step.
type blockMode uint8

const (
	blockScalar blockMode = iota // one pixel at a time
	blockX4                      // 4-pixel blocks, then scalar
	blockX8                      // 8-pixel blocks, then 4-pixel blocks, then scalar
)

// String returns the block mode name used in debug logs.
func (m blockMode) String() string {
	switch m {
	case blockX4:
		return "x4"
	case blockX8:
		return "x8"
	default:
		return "scalar"
	}
}

// cpuFeatures records the vector extensions relevant to the compositor.
type cpuFeatures struct {
	SSE2     bool
	AVX2     bool
	NEON     bool
	Disabled bool
}

// blockMode returns the widest block size the CPU supports.
func (f cpuFeatures) blockMode() blockMode {
	switch {
	case f.Disabled:
		return blockScalar
	case f.AVX2:
		return blockX8
	case f.SSE2 || f.NEON:
		return blockX4
	default:
		return blockScalar
	}
}

// detectCPU runs once; the result is immutable afterwards.
var detectCPU = sync.OnceValue(func() cpuFeatures {
	f := cpuFeatures{
		SSE2:     cpu.X86.HasSSE2,
		AVX2:     cpu.X86.HasAVX2,
		NEON:     cpu.ARM64.HasASIMD,
		Disabled: os.Getenv(disableSIMDEnv) == "1",
	}
	Logger().Debug("tinyskia: cpu features",
		slog.Bool("sse2", f.SSE2),
		slog.Bool("avx2", f.AVX2),
		slog.Bool("neon", f.NEON),
		slog.Bool("disabled", f.Disabled),
		slog.String("blocks", f.blockMode().String()))
	return f
})
