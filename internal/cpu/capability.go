// Package cpu detects the CPU features the port layer dispatches on.
package cpu

import (
	"runtime"
	"strings"
)

// CRC32CImpl identifies a CRC32-Castagnoli implementation.
type CRC32CImpl uint8

const (
	// Software is the portable table-driven implementation.
	Software CRC32CImpl = iota
	// SSE42 is the x86-64 CRC32 instruction (SSE4.2).
	SSE42
	// ARMv8CRC is the ARM64 CRC32C instruction set extension.
	ARMv8CRC
)

// String returns the string representation of a CRC32CImpl.
func (i CRC32CImpl) String() string {
	switch i {
	case Software:
		return "software"
	case SSE42:
		return "sse4.2"
	case ARMv8CRC:
		return "armv8-crc"
	default:
		return "unknown"
	}
}

// Accelerated reports whether the implementation uses a hardware instruction.
func (i CRC32CImpl) Accelerated() bool {
	return i == SSE42 || i == ARMv8CRC
}

// ParseCRC32CImpl parses a string into a CRC32CImpl value.
// "hardware" resolves to whatever instruction this CPU offers.
func ParseCRC32CImpl(s string) (CRC32CImpl, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "software", "generic":
		return Software, true
	case "sse4.2", "sse42":
		return SSE42, true
	case "armv8-crc", "crc32":
		return ARMv8CRC, true
	case "hardware":
		return BestCRC32C(), true
	default:
		return Software, false
	}
}

// CPU feature flags (set by platform-specific init)
var (
	hasSSE42    bool // x86-64 SSE4.2 (CRC32 instruction)
	hasARM64CRC bool // ARM64 CRC32/CRC32C instructions
)

// Available checks if a CRC32C implementation is supported on this CPU.
func Available(impl CRC32CImpl) bool {
	switch impl {
	case Software:
		return true
	case SSE42:
		return hasSSE42
	case ARMv8CRC:
		return hasARM64CRC
	default:
		return false
	}
}

// BestCRC32C chooses the fastest CRC32C implementation for this CPU.
func BestCRC32C() CRC32CImpl {
	switch runtime.GOARCH {
	case "amd64":
		if hasSSE42 {
			return SSE42
		}
	case "arm64":
		if hasARM64CRC {
			return ARMv8CRC
		}
	}
	return Software
}

// HasSSE42 returns true if the x86-64 CRC32 instruction is available.
func HasSSE42() bool {
	return hasSSE42
}

// HasARM64CRC returns true if the ARM64 CRC32C instructions are available.
func HasARM64CRC() bool {
	return hasARM64CRC
}
